package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	"github.com/BruksfildServices01/barberpro/internal/store"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

const defaultPreferences = "Sem preferências registradas"

type ClientHandler struct {
	store    *store.Store
	audit    *audit.Dispatcher
	stylist  *ai.Stylist
	notifier ucAppointment.Notifier
	shop     ucAppointment.Shop
}

func NewClientHandler(
	st *store.Store,
	audit *audit.Dispatcher,
	stylist *ai.Stylist,
	notifier ucAppointment.Notifier,
	shop ucAppointment.Shop,
) *ClientHandler {
	return &ClientHandler{
		store:    st,
		audit:    audit,
		stylist:  stylist,
		notifier: notifier,
		shop:     shop,
	}
}

type ClientRequest struct {
	Name        *string  `json:"name"`
	Phone       *string  `json:"phone"`
	LastVisit   *string  `json:"last_visit"`
	Preferences *string  `json:"preferences"`
	TotalSpent  *float64 `json:"total_spent"`
}

type MarketingResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	var (
		clients []models.Client
		err     error
	)
	if query != "" {
		clients, err = h.store.SearchClients(c.Request.Context(), query)
	} else {
		clients, err = h.store.ListClients(c.Request.Context())
	}
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.store.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client := models.Client{
		LastVisit:   h.shop.Today(),
		Preferences: defaultPreferences,
	}
	if err := applyClient(&client, req); err != nil {
		httperr.From(c, err)
		return
	}

	if err := h.store.CreateClient(c.Request.Context(), &client); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "client_created", "client", client.ID, nil)

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.store.GetClient(ctx, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	if err := applyClient(client, req); err != nil {
		httperr.From(c, err)
		return
	}

	if err := h.store.UpdateClient(ctx, client); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "client_updated", "client", client.ID, nil)

	httpresp.OK(c, client)
}

// Delete não apaga os agendamentos do cliente: eles guardam o nome.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	writeAudit(h.audit, middleware.UserID(c), "client_deleted", "client", id, nil)

	c.Status(http.StatusNoContent)
}

// ======================================================
// MARKETING (IA + WHATSAPP)
// ======================================================

func (h *ClientHandler) Marketing(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.store.GetClient(ctx, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	text := h.stylist.MarketingMessage(ctx, ai.MarketingInput{
		ClientName:  client.Name,
		LastVisit:   client.LastVisit,
		Preferences: client.Preferences,
	})

	msg := h.notifier.Dispatch(notify.Message{
		Kind:     notify.KindMarketing,
		ClientID: client.ID,
		Phone:    client.Phone,
		Text:     text,
	})

	httpresp.OK(c, MarketingResponse{Message: msg.Text, Link: msg.Link})
}

func applyClient(client *models.Client, req ClientRequest) error {
	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Preferences != nil {
		client.Preferences = strings.TrimSpace(*req.Preferences)
	}
	if req.LastVisit != nil {
		if *req.LastVisit != "" && !domain.ValidDate(*req.LastVisit) {
			return httperr.ErrValidation("last_visit", "invalid_date")
		}
		client.LastVisit = *req.LastVisit
	}
	if req.TotalSpent != nil {
		if *req.TotalSpent < 0 {
			return httperr.ErrValidation("total_spent", "invalid_price")
		}
		client.TotalSpent = *req.TotalSpent
	}

	if client.Name == "" {
		return httperr.ErrValidation("name", "client_name_required")
	}
	return nil
}
