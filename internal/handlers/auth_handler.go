package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	"github.com/BruksfildServices01/barberpro/internal/validators"
)

const (
	tokenTTL          = 24 * time.Hour
	minNameLength     = 3
	minPasswordLength = 4
)

// EmailChecker confere o domínio do e-mail no cadastro. nil desliga.
type EmailChecker interface {
	Valid(ctx context.Context, email string) bool
}

type AuthHandler struct {
	store  *store.Store
	config *config.Config
	audit  *audit.Dispatcher
	emails EmailChecker
	clock  timezone.Clock
}

func NewAuthHandler(
	st *store.Store,
	cfg *config.Config,
	audit *audit.Dispatcher,
	emails EmailChecker,
	clock timezone.Clock,
) *AuthHandler {
	if clock == nil {
		clock = timezone.SystemClock
	}
	return &AuthHandler{
		store:  st,
		config: cfg,
		audit:  audit,
		emails: emails,
		clock:  clock,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  dto.BarberDTO `json:"user"`
	Token string        `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := validators.NormalizeEmail(req.Email)

	if err := validateProfile(name, email, &req.Password); err != nil {
		httperr.From(c, err)
		return
	}

	if h.emails != nil && !h.emails.Valid(c.Request.Context(), email) {
		httperr.From(c, httperr.ErrValidation("email", "invalid_email_domain"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	barber := models.Barber{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(req.Phone),
	}

	if err := h.store.CreateBarber(c.Request.Context(), &barber); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, barber.ID, "barber_registered", "barber", barber.ID, nil)

	h.startSession(c, http.StatusCreated, &barber)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber, err := h.store.GetBarberByEmail(c.Request.Context(), validators.NormalizeEmail(req.Email))
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	writeAudit(h.audit, barber.ID, "login", "barber", barber.ID, nil)

	h.startSession(c, http.StatusOK, barber)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.store.EndSession(c.Request.Context()); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, userID, "logout", "barber", userID, nil)

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, barber *models.Barber) {
	now := h.clock()

	if err := h.store.StartSession(c.Request.Context(), barber.ID, now); err != nil {
		httperr.From(c, err)
		return
	}

	token, err := h.generateToken(barber.ID, now)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(status, authResponse{User: dto.NewBarber(*barber), Token: token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(barberID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   barberID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// --------- Validação ---------

// validateProfile checa nome, e-mail e, se informada, a senha.
func validateProfile(name, email string, password *string) error {
	if utf8.RuneCountInString(name) < minNameLength {
		return httperr.ErrValidation("name", "name_too_short")
	}
	if !validators.IsEmailSyntaxValid(email) {
		return httperr.ErrValidation("email", "invalid_email")
	}
	if password != nil && utf8.RuneCountInString(*password) < minPasswordLength {
		return httperr.ErrValidation("password", "password_too_short")
	}
	return nil
}
