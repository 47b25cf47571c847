package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

var messages = map[string]string{
	"time_required":          "Por favor, selecione um horário.",
	"invalid_time":           "Horário inválido.",
	"invalid_date":           "Data inválida.",
	"client_name_required":   "Nome do cliente obrigatório.",
	"client_not_found":       "Cliente não encontrado.",
	"service_name_required":  "Nome do serviço obrigatório.",
	"service_price_required": "Preço do serviço obrigatório.",
	"invalid_price":          "Preço inválido.",
	"invalid_duration":       "Duração inválida.",
	"invalid_month":          "Mês inválido.",
	"service_not_found":      "Serviço não encontrado.",
	"barber_not_found":       "Profissional não encontrado.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"invalid_state":          "Transição de status inválida.",
	"slot_taken":             "Conflito de horário.",
	"no_free_slots":          "Não há horários livres para este dia.",
	"email_already_exists":   "E-mail já cadastrado.",
	"name_too_short":         "O nome deve ter pelo menos 3 caracteres.",
	"password_too_short":     "A senha deve ter pelo menos 4 caracteres.",
	"invalid_email":          "E-mail inválido.",
	"invalid_email_domain":   "O domínio do e-mail informado não parece ser válido.",
	"invalid_credentials":    "E-mail ou senha incorretos.",
	"invalid_image":          "Imagem inválida.",
	"payment_unavailable":    "Pagamento online indisponível.",
	"storage_unavailable":    "Armazenamento de imagens indisponível.",
	"session_not_found":      "Conversa não encontrada.",
	"bot_busy":               "Muitas conversas abertas. Tente novamente em instantes.",
}

// From traduz um erro da taxonomia para a resposta HTTP adequada.
func From(c *gin.Context, err error) {
	code := Code(err)
	msg, ok := messages[code]
	if !ok {
		msg = "Erro ao processar a requisição."
	}

	switch {
	case IsValidation(err):
		BadRequest(c, code, msg)
	case IsConflict(err):
		Conflict(c, code, msg)
	case IsExternal(err):
		Write(c, http.StatusBadGateway, code, "Serviço externo indisponível.")
	case strings.HasSuffix(code, "_not_found"):
		NotFound(c, code, msg)
	case code == "payment_unavailable" || code == "storage_unavailable":
		Unavailable(c, code, msg)
	case code == "internal_error":
		Internal(c, code, msg)
	default:
		BadRequest(c, code, msg)
	}
}
