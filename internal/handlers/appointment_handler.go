package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create      *appointment.CreateBooking
	confirm     *appointment.ConfirmAppointment
	cancel      *appointment.CancelAppointment
	complete    *appointment.CompleteAppointment
	delete      *appointment.DeleteAppointment
	receipt     *appointment.SendReceipt
	paymentLink *appointment.CreatePaymentLink
	listByDate  *appointment.ListAppointmentsByDate
	listByMonth *appointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *appointment.CreateBooking,
	confirm *appointment.ConfirmAppointment,
	cancel *appointment.CancelAppointment,
	complete *appointment.CompleteAppointment,
	remove *appointment.DeleteAppointment,
	receipt *appointment.SendReceipt,
	paymentLink *appointment.CreatePaymentLink,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
		delete:      remove,
		receipt:     receipt,
		paymentLink: paymentLink,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReceiptRequest struct {
	Send *bool `json:"send"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in appointment.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	in.UserID = middleware.UserID(c)

	res, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// LIST
// ======================================================

// ListByDate: GET /appointments?date=YYYY-MM-DD&barber_id=
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	list, err := h.listByDate.Execute(
		c.Request.Context(),
		c.Query("date"),
		c.Query("barber_id"),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, list)
}

// ListByMonth: GET /appointments/month?year=2026&month=3&barber_id=
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), year, month, c.Query("barber_id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	res, err := h.complete.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// RECIBO / PAGAMENTO
// ======================================================

func (h *AppointmentHandler) Receipt(c *gin.Context) {
	var req ReceiptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	res, err := h.receipt.Execute(c.Request.Context(), c.Param("id"), req.Send)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	link, err := h.paymentLink.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, link)
}
