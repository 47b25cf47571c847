package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
)

func sign(t *testing.T, secret string, claims jwt.Claims, method jwt.SigningMethod) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserID(c))
	})

	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   "b1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	expired := jwt.RegisteredClaims{
		Subject:   "b1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + sign(t, "s3cret", valid, jwt.SigningMethodHS256), http.StatusOK, "b1"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + sign(t, "s3cret", expired, jwt.SigningMethodHS256), http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + sign(t, "other", valid, jwt.SigningMethodHS256), http.StatusUnauthorized, ""},
		{"wrong alg", "Bearer " + sign(t, "s3cret", valid, jwt.SigningMethodHS512), http.StatusUnauthorized, ""},
		{"no expiry", "Bearer " + sign(t, "s3cret", jwt.RegisteredClaims{Subject: "b1"}, jwt.SigningMethodHS256), http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"https://painel.barberpro.app"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://painel.barberpro.app")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://painel.barberpro.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
