package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

type ServiceHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(st *store.Store, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: st, audit: audit}
}

type ServiceRequest struct {
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
}

func (r ServiceRequest) toModel() (models.Service, error) {
	svc := models.Service{
		Name:            strings.TrimSpace(r.Name),
		DurationMinutes: r.DurationMinutes,
	}

	if svc.Name == "" {
		return svc, httperr.ErrValidation("name", "service_name_required")
	}
	if r.Price == nil {
		return svc, httperr.ErrValidation("price", "service_price_required")
	}
	if *r.Price < 0 {
		return svc, httperr.ErrValidation("price", "invalid_price")
	}
	svc.Price = *r.Price

	if svc.DurationMinutes < 0 {
		return svc, httperr.ErrValidation("duration_minutes", "invalid_duration")
	}
	if svc.DurationMinutes == 0 {
		svc.DurationMinutes = models.DefaultServiceDuration
	}
	return svc, nil
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := req.toModel()
	if err != nil {
		httperr.From(c, err)
		return
	}

	if err := h.store.CreateService(c.Request.Context(), &svc); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "service_created", "service", svc.ID, nil)

	httpresp.Created(c, svc)
}

// Replace troca o serviço inteiro. Agendamentos antigos mantêm nome e preço
// da época da reserva.
func (h *ServiceHandler) Replace(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := req.toModel()
	if err != nil {
		httperr.From(c, err)
		return
	}
	svc.ID = c.Param("id")

	if err := h.store.ReplaceService(c.Request.Context(), &svc); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "service_updated", "service", svc.ID, nil)

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "service_deleted", "service", id, nil)

	c.Status(http.StatusNoContent)
}
