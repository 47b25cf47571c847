package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/chatbot"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/store"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o cliente final: cardápio e o bot de agendamento.
type PublicHandler struct {
	store *store.Store
	bot   *chatbot.Registry
}

func NewPublicHandler(st *store.Store, bot *chatbot.Registry) *PublicHandler {
	return &PublicHandler{store: st, bot: bot}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BotMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type BotSessionResponse struct {
	ID         string          `json:"id"`
	Step       chatbot.Step    `json:"step"`
	Draft      chatbot.Draft   `json:"draft"`
	Transcript []chatbot.Entry `json:"transcript"`
}

type BotReplyResponse struct {
	Reply chatbot.Reply `json:"reply"`
	Step  chatbot.Step  `json:"step"`
	Draft chatbot.Draft `json:"draft"`
}

////////////////////////////////////////////////////////
// CARDÁPIO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, dto.NewBarbers(barbers))
}

////////////////////////////////////////////////////////
// BOT
////////////////////////////////////////////////////////

func (h *PublicHandler) OpenBotSession(c *gin.Context) {
	s, err := h.bot.Open()
	if err != nil {
		httperr.Unavailable(c, "bot_busy", "Muitas conversas abertas. Tente novamente em instantes.")
		return
	}
	httpresp.Created(c, sessionResponse(s))
}

func (h *PublicHandler) BotSession(c *gin.Context) {
	s, ok := h.bot.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Conversa não encontrada.")
		return
	}

	httpresp.OK(c, sessionResponse(s))
}

// SendBotMessage espera o "digitando" do bot e devolve a resposta.
func (h *PublicHandler) SendBotMessage(c *gin.Context) {
	var req BotMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		httperr.BadRequest(c, "invalid_request", "Mensagem vazia.")
		return
	}

	s, ok := h.bot.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "session_not_found", "Conversa não encontrada.")
		return
	}

	reply, err := s.Send(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, chatbot.ErrSessionClosed) {
			httperr.NotFound(c, "session_not_found", "Conversa não encontrada.")
			return
		}
		httperr.Write(c, http.StatusGatewayTimeout, "bot_timeout", "O bot não respondeu a tempo.")
		return
	}

	step, draft := s.State()
	httpresp.OK(c, BotReplyResponse{Reply: reply, Step: step, Draft: draft})
}

func (h *PublicHandler) CloseBotSession(c *gin.Context) {
	if !h.bot.Close(c.Param("id")) {
		httperr.NotFound(c, "session_not_found", "Conversa não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}

func sessionResponse(s *chatbot.Session) BotSessionResponse {
	step, draft := s.State()
	return BotSessionResponse{
		ID:         s.ID,
		Step:       step,
		Draft:      draft,
		Transcript: s.Transcript(),
	}
}
