package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/chatbot"
	"github.com/BruksfildServices01/barberpro/internal/config"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	"github.com/BruksfildServices01/barberpro/internal/routes"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
	today  string
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	shop := ucAppointment.Shop{
		Name:  "BarberPro",
		Loc:   timezone.Location("America/Sao_Paulo"),
		Clock: timezone.SystemClock,
	}

	seed, err := store.DemoData(shop.Today())
	require.NoError(t, err)

	mem := kv.NewMemory()
	st, err := store.Open(t.Context(), mem, log, seed)
	require.NoError(t, err)

	auditLog := audit.New(mem)
	auditDispatcher := audit.NewDispatcher(auditLog, log)
	notifier := notify.NewDispatcher(notify.NewLogSink(log), "55", log)

	bot := chatbot.NewRegistry(st, ucAppointment.NewBookFromBot(st, auditDispatcher, shop), chatbot.Config{
		ShopName: shop.Name,
		Location: shop.Loc,
	}, 0)

	t.Cleanup(func() {
		bot.Shutdown()
		notifier.Close()
		auditDispatcher.Close()
	})

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config:        &config.Config{JWTSecret: "test-secret", CORSOrigins: []string{"*"}},
		Log:           log,
		Store:         st,
		Audit:         auditDispatcher,
		AuditLog:      auditLog,
		Notifier:      notifier,
		Stylist:       ai.NewStylist(nil, ai.Options{}, log),
		Shop:          shop,
		Bot:           bot,
		FormCatalogue: domain.FormCatalogue,
	})

	return &testServer{t: t, router: r, today: shop.Today()}
}

func (s *testServer) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func (s *testServer) login() {
	s.t.Helper()

	w, body := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": " Admin@Barber.com", "password": "123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	s.token = body["token"].(string)
}

func TestAuth(t *testing.T) {
	s := newServer(t)

	w, _ := s.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "admin@barber.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])

	s.login()

	w, body = s.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", body["id"])
	assert.NotContains(t, body, "password_hash")

	w, _ = s.do(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegister(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name   string
		body   gin.H
		status int
		code   string
	}{
		{"short name", gin.H{"name": "Jo", "email": "jo@barber.com", "password": "1234"}, 400, "name_too_short"},
		{"short password", gin.H{"name": "Joana", "email": "jo@barber.com", "password": "123"}, 400, "password_too_short"},
		{"bad email", gin.H{"name": "Joana", "email": "jo", "password": "1234"}, 400, "invalid_email"},
		{"duplicate email", gin.H{"name": "Joana", "email": "ADMIN@barber.com", "password": "1234"}, 409, "email_already_exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := s.do(http.MethodPost, "/api/auth/register", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body["error_code"])
		})
	}

	w, body := s.do(http.MethodPost, "/api/auth/register", gin.H{"name": "Joana Navalha", "email": "joana@barber.com", "password": "1234"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, body["token"])
}

func TestAppointmentFlow(t *testing.T) {
	s := newServer(t)
	s.login()

	w, body := s.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["today_count"])
	assert.EqualValues(t, 105, body["revenue"])

	w, body = s.do(http.MethodPost, "/api/appointments", gin.H{"client_id": "c1", "service_id": "1", "date": s.today})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "time_required", body["error_code"])

	w, body = s.do(http.MethodPost, "/api/appointments", gin.H{
		"new_client": gin.H{"name": "Pedro Lima", "phone": "(11) 91234-5678"},
		"service_id": "1",
		"date":       s.today,
		"time":       "11:30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := body["appointment"].(map[string]any)
	assert.Equal(t, "pending", ap["status"])
	assert.Contains(t, body["notification"].(map[string]any)["link"], "https://wa.me/5511912345678?text=")

	w, _ = s.do(http.MethodPatch, "/api/appointments/a2/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPatch, "/api/appointments/a2/confirm", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = s.do(http.MethodPatch, "/api/appointments/a2/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "feedback_request", body["notification"].(map[string]any)["kind"])

	w, body = s.do(http.MethodGet, "/api/appointments?date="+s.today, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, body["total"])

	w, body = s.do(http.MethodPatch, "/api/appointments/nope/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", body["error_code"])

	w, body = s.do(http.MethodPost, "/api/appointments/a1/payment-link", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "payment_unavailable", body["error_code"])
}

func TestCatalogue(t *testing.T) {
	s := newServer(t)
	s.login()

	w, body := s.do(http.MethodPost, "/api/clients", gin.H{"name": "Marcos", "phone": "11 95555-0000"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Sem preferências registradas", body["preferences"])
	assert.Equal(t, s.today, body["last_visit"])

	w, body = s.do(http.MethodGet, "/api/clients?query=marc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, body = s.do(http.MethodPost, "/api/clients/c1/marketing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "Fala Carlos")
	assert.Contains(t, body["link"], "https://wa.me/5511999991234?text=")

	w, body = s.do(http.MethodPost, "/api/services", gin.H{"name": "Sobrancelha", "price": 10})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 30, body["duration_minutes"])

	w, body = s.do(http.MethodPost, "/api/services", gin.H{"name": "Grátis?"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "service_price_required", body["error_code"])

	w, body = s.do(http.MethodPost, "/api/ai/styles", gin.H{"face_shape": "oval"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["total"])
}

func TestPublicBot(t *testing.T) {
	s := newServer(t)

	w, body := s.do(http.MethodPost, "/api/public/bot/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["id"].(string)
	assert.Equal(t, "WELCOME", body["step"])

	w, body = s.do(http.MethodPost, "/api/public/bot/sessions/"+id+"/messages", gin.H{"text": "quero agendar"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SELECT_SERVICE", body["step"])

	w, _ = s.do(http.MethodDelete, "/api/public/bot/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body = s.do(http.MethodPost, "/api/public/bot/sessions/"+id+"/messages", gin.H{"text": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session_not_found", body["error_code"])

	w, body = s.do(http.MethodGet, "/api/public/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, body["total"])
}

func TestAuditLogs(t *testing.T) {
	s := newServer(t)
	s.login()

	w, _ := s.do(http.MethodPatch, "/api/appointments/a2/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		_, body := s.do(http.MethodGet, "/api/audit-logs?entity=appointment", nil)
		total, _ := body["total"].(float64)
		return total == 1
	}, 2*time.Second, 10*time.Millisecond)
}
