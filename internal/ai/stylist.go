// Package ai wraps the generative text collaborator. Every failure degrades to
// a local fallback and is only logged.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

const maxRecommendations = 3

type StyleRecommendation struct {
	StyleName        string   `json:"styleName"`
	Description      string   `json:"description"`
	MaintenanceLevel string   `json:"maintenanceLevel"`
	Products         []string `json:"products"`
}

type StyleInput struct {
	FaceShape string `json:"face_shape"`
	HairType  string `json:"hair_type"`
	Lifestyle string `json:"lifestyle"`
}

type MarketingInput struct {
	ClientName  string
	LastVisit   string // YYYY-MM-DD
	Preferences string
}

type Options struct {
	Timeout           time.Duration
	RequestsPerMinute int
	Clock             timezone.Clock
}

type Stylist struct {
	gen     Generator
	limiter *rate.Limiter
	timeout time.Duration
	clock   timezone.Clock
	log     *zap.Logger
}

// NewStylist aceita gen nil: sem chave de API tudo cai no fallback.
func NewStylist(gen Generator, opts Options, log *zap.Logger) *Stylist {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = timezone.SystemClock
	}

	limit := rate.Inf
	burst := 1
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
		burst = opts.RequestsPerMinute
	}

	return &Stylist{
		gen:     gen,
		limiter: rate.NewLimiter(limit, burst),
		timeout: opts.Timeout,
		clock:   opts.Clock,
		log:     log,
	}
}

func (s *Stylist) call(ctx context.Context, req Request) (string, error) {
	if s.gen == nil {
		return "", httperr.ErrExternal("gemini", fmt.Errorf("not configured"))
	}
	if !s.limiter.Allow() {
		return "", httperr.ErrExternal("gemini", fmt.Errorf("rate limited"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.gen.Generate(ctx, req)
	if err != nil {
		return "", httperr.ErrExternal("gemini", err)
	}
	return out, nil
}

// StyleRecommendations devolve até três sugestões; qualquer falha vira lista vazia.
func (s *Stylist) StyleRecommendations(ctx context.Context, in StyleInput) []StyleRecommendation {
	prompt := fmt.Sprintf(`Atue como um barbeiro especialista e consultor de imagem.
Sugira 3 estilos de corte de cabelo e barba para um cliente com as seguintes características:
- Formato do rosto: %s
- Tipo de cabelo: %s
- Estilo de vida/Preferência: %s

Para cada estilo, forneça o nome, uma breve descrição técnica de como fazer, nível de manutenção (Baixo, Médio, Alto) e produtos recomendados.
Retorne APENAS o JSON.`, in.FaceShape, in.HairType, in.Lifestyle)

	raw, err := s.call(ctx, Request{Prompt: prompt, Schema: styleSchema})
	if err != nil {
		s.log.Warn("style recommendations failed", zap.Error(err))
		return []StyleRecommendation{}
	}

	var recs []StyleRecommendation
	if err := json.Unmarshal([]byte(stripFence(raw)), &recs); err != nil {
		s.log.Warn("style recommendations unreadable", zap.Error(err))
		return []StyleRecommendation{}
	}

	if recs == nil {
		recs = []StyleRecommendation{}
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	for i := range recs {
		if recs[i].Products == nil {
			recs[i].Products = []string{}
		}
	}
	return recs
}

// MarketingFallback é a mensagem usada quando a IA não responde.
func MarketingFallback(clientName string) string {
	return fmt.Sprintf(
		"Fala %s! 💈 Já faz um tempo desde seu último corte. Que tal agendar um horário para renovar o visual?",
		clientName,
	)
}

// MarketingMessage pede uma mensagem curta de reengajamento.
func (s *Stylist) MarketingMessage(ctx context.Context, in MarketingInput) string {
	timeContext := "Faz algumas semanas que ele veio."
	if daysSince(in.LastVisit, s.clock()) > 30 {
		timeContext = "Faz mais de um mês que ele não vem."
	}

	prompt := fmt.Sprintf(`Atue como um barbeiro profissional e amigo.
Crie uma mensagem curta de WhatsApp para o cliente %s.

Contexto:
- %s
- Preferências do cliente: %s

Objetivo: Reengajar o cliente sugerindo agendar um serviço (corte ou barba) de forma natural.
Tom: Descontraído, use emojis, não pareça um robô. Máximo de 2 frases.

Retorne APENAS o texto da mensagem.`, in.ClientName, timeContext, in.Preferences)

	out, err := s.call(ctx, Request{Prompt: prompt})
	if err != nil {
		s.log.Warn("marketing message failed", zap.Error(err))
		return MarketingFallback(in.ClientName)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return MarketingFallback(in.ClientName)
	}
	return out
}

// daysSince arredonda para cima, como a contagem de dias do painel.
// Datas inválidas contam como zero.
func daysSince(date string, now time.Time) int {
	t, err := time.Parse(timezone.DateLayout, date)
	if err != nil {
		return 0
	}
	return int(math.Ceil(math.Abs(now.Sub(t).Hours()) / 24))
}

// stripFence remove ```json ... ``` quando o modelo ignora o MIME pedido.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
