package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	loc    *time.Location
}

func NewAuditLogsHandler(logger *audit.Logger, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &AuditLogsHandler{logger: logger, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Período em dias do fuso da barbearia; "to" inclui o dia inteiro
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		if d, err := timezone.ParseDate(from, h.loc); err == nil {
			f.From = d
		}
	}

	if to := c.Query("to"); to != "" {
		if d, err := timezone.ParseDate(to, h.loc); err == nil {
			f.To = d.AddDate(0, 0, 1)
		}
	}

	out, err := h.logger.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.OK(c, out)
}
