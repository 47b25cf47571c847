// Package chatbot is the WhatsApp-style self-service booking dialogue: a
// linear, step-gated state machine that collects a service, barber, date and
// time and books through the self-service use case.
package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	uc "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

type Step string

const (
	StepWelcome       Step = "WELCOME"
	StepSelectService Step = "SELECT_SERVICE"
	StepSelectBarber  Step = "SELECT_BARBER"
	StepSelectDate    Step = "SELECT_DATE"
	StepSelectTime    Step = "SELECT_TIME"
	StepConfirmation  Step = "CONFIRMATION"
)

// Draft é a reserva em construção.
type Draft struct {
	ServiceID   string `json:"service_id,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	BarberID    string `json:"barber_id,omitempty"`
	BarberName  string `json:"barber_name,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Reply é uma mensagem do bot. Options são só sugestões de resposta rápida.
type Reply struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// Catalog é a leitura que o bot faz do armazenamento.
type Catalog interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}

// Booker grava a reserva com checagem de conflito.
type Booker interface {
	Execute(ctx context.Context, in uc.BotBookingInput) (*models.Appointment, error)
}

type Config struct {
	ShopName  string
	Catalogue domain.Catalogue
	Location  *time.Location
	Clock     timezone.Clock
	Logger    *zap.Logger
}

// Conversation não é segura para uso concorrente; Session serializa as entradas.
type Conversation struct {
	catalog Catalog
	booker  Booker
	cfg     Config

	step  Step
	draft Draft
}

func NewConversation(catalog Catalog, booker Booker, cfg Config) *Conversation {
	if cfg.ShopName == "" {
		cfg.ShopName = "BarberPro"
	}
	if len(cfg.Catalogue) == 0 {
		cfg.Catalogue = domain.BotCatalogue
	}
	if cfg.Location == nil {
		cfg.Location = timezone.Location(timezone.DefaultTimezone)
	}
	if cfg.Clock == nil {
		cfg.Clock = timezone.SystemClock
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Conversation{
		catalog: catalog,
		booker:  booker,
		cfg:     cfg,
		step:    StepWelcome,
	}
}

func (c *Conversation) Step() Step   { return c.step }
func (c *Conversation) Draft() Draft { return c.draft }

func (c *Conversation) Greeting() Reply {
	return Reply{Text: fmt.Sprintf(
		"Olá! Bem-vindo ao autoatendimento da %s. 💈\nComo posso ajudar hoje? Digite 'agendar' para marcar um horário.",
		c.cfg.ShopName,
	)}
}

func (c *Conversation) reset() {
	c.step = StepWelcome
	c.draft = Draft{}
}

// Handle processa uma entrada e devolve exatamente uma resposta.
func (c *Conversation) Handle(ctx context.Context, input string) Reply {
	text := strings.TrimSpace(input)
	lower := strings.ToLower(text)

	if lower == "cancelar" || lower == "inicio" {
		c.reset()
		return Reply{Text: "Operação cancelada. Como posso ajudar? Digite 'agendar'."}
	}

	switch c.step {
	case StepWelcome:
		return c.onWelcome(ctx, lower)
	case StepSelectService:
		return c.onSelectService(ctx, text)
	case StepSelectBarber:
		return c.onSelectBarber(ctx, text)
	case StepSelectDate:
		return c.onSelectDate(ctx, text)
	case StepSelectTime:
		return c.onSelectTime(ctx, text)
	case StepConfirmation:
		return c.onConfirmation(ctx, lower)
	default:
		c.reset()
		return c.Greeting()
	}
}

// ======================================================
// Steps
// ======================================================

func (c *Conversation) onWelcome(ctx context.Context, lower string) Reply {
	if !strings.Contains(lower, "agendar") && !strings.Contains(lower, "marcar") {
		return Reply{Text: "Desculpe, não entendi. Digite 'agendar' para começar."}
	}
	return c.startBooking(ctx, "Ótimo! Escolha um serviço digitando o número:")
}

// startBooking zera o rascunho e lista os serviços.
func (c *Conversation) startBooking(ctx context.Context, header string) Reply {
	services, err := c.catalog.ListServices(ctx)
	if err != nil || len(services) == 0 {
		if err != nil {
			c.cfg.Logger.Error("bot list services", zap.Error(err))
		}
		return Reply{Text: "No momento não há serviços disponíveis para agendamento. Tente novamente mais tarde."}
	}

	c.draft = Draft{}
	c.step = StepSelectService

	lines := make([]string, len(services))
	for i, s := range services {
		lines[i] = fmt.Sprintf("%d. %s (R$ %s)", i+1, s.Name, formatPrice(s.Price))
	}
	return Reply{
		Text:    header + "\n\n" + strings.Join(lines, "\n"),
		Options: numberOptions(len(services)),
	}
}

func (c *Conversation) onSelectService(ctx context.Context, text string) Reply {
	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		c.cfg.Logger.Error("bot list services", zap.Error(err))
	}

	i, ok := pickIndex(text, len(services))
	if !ok {
		return Reply{Text: "Opção inválida. Digite o número do serviço correspondente."}
	}

	barbers, err := c.catalog.ListBarbers(ctx)
	if err != nil || len(barbers) == 0 {
		if err != nil {
			c.cfg.Logger.Error("bot list barbers", zap.Error(err))
		}
		return Reply{Text: "No momento não há barbeiros disponíveis. Digite 'cancelar' para voltar ao início."}
	}

	svc := services[i]
	c.draft.ServiceID = svc.ID
	c.draft.ServiceName = svc.Name
	c.step = StepSelectBarber

	lines := make([]string, len(barbers))
	for j, b := range barbers {
		lines[j] = fmt.Sprintf("%d. %s", j+1, b.Name)
	}
	return Reply{
		Text:    fmt.Sprintf("Você escolheu: *%s*.\n\nCom qual barbeiro deseja cortar?\n%s", svc.Name, strings.Join(lines, "\n")),
		Options: numberOptions(len(barbers)),
	}
}

func (c *Conversation) onSelectBarber(ctx context.Context, text string) Reply {
	barbers, err := c.catalog.ListBarbers(ctx)
	if err != nil {
		c.cfg.Logger.Error("bot list barbers", zap.Error(err))
	}

	i, ok := pickIndex(text, len(barbers))
	if !ok {
		return Reply{Text: "Barbeiro inválido. Tente novamente."}
	}

	b := barbers[i]
	c.draft.BarberID = b.ID
	c.draft.BarberName = b.Name
	c.step = StepSelectDate

	return Reply{
		Text:    fmt.Sprintf("Certo, com %s.\n\nPara qual dia você gostaria de agendar?", b.Name),
		Options: dateOptions(),
	}
}

func (c *Conversation) onSelectDate(ctx context.Context, text string) Reply {
	now := c.cfg.Clock().In(c.cfg.Location)
	date, ok := ParseDate(text, now)
	if !ok {
		return Reply{Text: "Data inválida. Tente 'Hoje', 'Amanhã' ou formato dia/mês (ex: 15/08)."}
	}

	if date < now.Format(timezone.DateLayout) {
		return Reply{Text: "Essa data já passou. Por favor, escolha uma data futura (ex: 25/12)."}
	}

	appointments, err := c.catalog.ListAppointments(ctx)
	if err != nil {
		c.cfg.Logger.Error("bot list appointments", zap.Error(err))
	}

	free, err := domain.FreeSlots(c.cfg.Catalogue, date, c.draft.BarberID, appointments)
	if err != nil {
		c.cfg.Logger.Error("bot free slots", zap.String("date", date), zap.Error(err))
		return Reply{Text: "Data inválida. Tente 'Hoje', 'Amanhã' ou formato dia/mês (ex: 15/08)."}
	}

	display := timezone.FormatBR(date)
	if len(free) == 0 {
		return Reply{
			Text:    fmt.Sprintf("Poxa, a agenda para o dia %s está lotada. 😕\n\nPor favor, escolha outra data ou digite 'cancelar'.", display),
			Options: dateOptions(),
		}
	}

	c.draft.Date = date
	c.step = StepSelectTime

	return Reply{
		Text:    fmt.Sprintf("Perfeito. Para o dia %s, temos estes horários:\n\n%s\n\nQual horário prefere?", display, strings.Join(free, ", ")),
		Options: free[:min(6, len(free))],
	}
}

func (c *Conversation) onSelectTime(ctx context.Context, text string) Reply {
	hour, ok := ParseTime(text)
	if !ok {
		return Reply{Text: "Formato de hora inválido. Use HH:MM (Ex: 14:30)."}
	}

	ap, err := c.booker.Execute(ctx, uc.BotBookingInput{
		ServiceID: c.draft.ServiceID,
		BarberID:  c.draft.BarberID,
		Date:      c.draft.Date,
		Time:      hour,
	})
	switch {
	case httperr.IsConflict(err):
		return Reply{Text: fmt.Sprintf("⚠️ Opa! O horário das %s acabou de ser ocupado. Por favor, escolha outro.", hour)}
	case err != nil:
		c.cfg.Logger.Warn("bot booking failed", zap.Error(err))
		return Reply{Text: "Não foi possível concluir o agendamento. Digite 'cancelar' para recomeçar."}
	}

	c.step = StepConfirmation

	return Reply{Text: fmt.Sprintf(
		"✅ Agendamento Confirmado!\n\nServiço: %s\nBarbeiro: %s\nData: %s\nHorário: %s\n\nCaso precise cancelar, é só responder por aqui. Te esperamos lá!",
		ap.ServiceName,
		ap.BarberName,
		timezone.FormatBR(ap.Date),
		ap.Time,
	)}
}

func (c *Conversation) onConfirmation(ctx context.Context, lower string) Reply {
	if strings.Contains(lower, "agendar") {
		return c.startBooking(ctx, "Escolha um serviço:")
	}
	return Reply{Text: "Se deseja realizar outro agendamento, digite 'agendar'."}
}

// ======================================================
// Helpers
// ======================================================

// pickIndex converte uma escolha 1-based em índice 0-based.
func pickIndex(text string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}

func numberOptions(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func dateOptions() []string {
	return []string{"Hoje", "Amanhã"}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
