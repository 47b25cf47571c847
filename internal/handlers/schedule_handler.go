package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

// ScheduleHandler cobre o painel do dia e os horários livres.
type ScheduleHandler struct {
	dashboard    *appointment.GetDashboard
	availability *appointment.GetAvailability
	share        *appointment.ShareAvailability
	shop         appointment.Shop
}

func NewScheduleHandler(
	dashboard *appointment.GetDashboard,
	availability *appointment.GetAvailability,
	share *appointment.ShareAvailability,
	shop appointment.Shop,
) *ScheduleHandler {
	return &ScheduleHandler{
		dashboard:    dashboard,
		availability: availability,
		share:        share,
		shop:         shop,
	}
}

type ShareRequest struct {
	Date string `json:"date"`
}

func (h *ScheduleHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, stats)
}

// Availability: GET /availability?date=&barber_id= (data vazia = hoje)
func (h *ScheduleHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.shop.Today()
	}

	av, err := h.availability.Execute(c.Request.Context(), appointment.AvailabilityInput{
		Date:     date,
		BarberID: c.Query("barber_id"),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, av)
}

func (h *ScheduleHandler) Share(c *gin.Context) {
	var req ShareRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	msg, err := h.share.Execute(c.Request.Context(), req.Date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, msg)
}
