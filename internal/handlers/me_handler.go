package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/media"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/validators"
)

// AvatarUploader grava o avatar já convertido e devolve a URL pública.
type AvatarUploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type MeHandler struct {
	store    *store.Store
	audit    *audit.Dispatcher
	uploader AvatarUploader
	log      *zap.Logger
}

func NewMeHandler(
	st *store.Store,
	audit *audit.Dispatcher,
	uploader AvatarUploader,
	log *zap.Logger,
) *MeHandler {
	return &MeHandler{store: st, audit: audit, uploader: uploader, log: log}
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barber, err := h.store.GetBarber(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBarber(*barber))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber, err := h.store.GetBarber(ctx, middleware.UserID(c))
	if err != nil {
		httperr.From(c, err)
		return
	}

	if req.Name != nil {
		barber.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		barber.Email = validators.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		barber.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := validateProfile(barber.Name, barber.Email, req.Password); err != nil {
		httperr.From(c, err)
		return
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
			return
		}
		barber.PasswordHash = string(hashed)
	}

	if err := h.store.UpdateBarber(ctx, barber); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, barber.ID, "profile_updated", "barber", barber.ID, nil)

	c.JSON(http.StatusOK, dto.NewBarber(*barber))
}

// UploadAvatar recebe o campo multipart "avatar".
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.uploader == nil {
		httperr.From(c, httperr.ErrBusiness("storage_unavailable"))
		return
	}

	ctx := c.Request.Context()

	barber, err := h.store.GetBarber(ctx, middleware.UserID(c))
	if err != nil {
		httperr.From(c, err)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}
	if file.Size > media.MaxUploadSize {
		httperr.BadRequest(c, "invalid_image", "Imagem muito grande (máx. 5 MB).")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}
	defer f.Close()

	data, err := media.Avatar(f)
	if err != nil {
		if !errors.Is(err, media.ErrUnsupported) && !errors.Is(err, media.ErrTooLarge) {
			h.log.Error("avatar processing failed", zap.Error(err))
		}
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("avatars/%s/%s.webp", barber.ID, uuid.NewString())
	url, err := h.uploader.Upload(ctx, key, media.ContentType, data)
	if err != nil {
		h.log.Error("avatar upload failed", zap.String("key", key), zap.Error(err))
		httperr.From(c, httperr.ErrExternal("s3", err))
		return
	}

	barber.Avatar = url
	if err := h.store.UpdateBarber(ctx, barber); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, barber.ID, "avatar_updated", "barber", barber.ID, gin.H{"url": url})

	c.JSON(http.StatusOK, dto.NewBarber(*barber))
}

func (h *MeHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, dto.NewBarbers(barbers))
}
