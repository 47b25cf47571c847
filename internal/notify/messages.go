package notify

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

type Kind string

const (
	KindBookingConfirmation Kind = "booking_confirmation"
	KindBookingReceipt      Kind = "booking_receipt"
	KindFeedbackRequest     Kind = "feedback_request"
	KindAvailabilityShare   Kind = "availability_share"
	KindMarketing           Kind = "marketing"
)

func barberName(ap models.Appointment) string {
	if ap.BarberName != "" {
		return ap.BarberName
	}
	return models.AnyBarberName
}

// BookingConfirmation é enviado ao criar (e ao reenviar) um agendamento.
func BookingConfirmation(shop string, ap models.Appointment) string {
	return fmt.Sprintf(
		"Olá %s! 👋\nSeu agendamento foi confirmado com sucesso na *%s*!\n\n"+
			"✂️ *Serviço:* %s\n"+
			"💈 *Profissional:* %s\n"+
			"📅 *Data:* %s\n"+
			"⏰ *Horário:* %s\n"+
			"💰 *Valor:* R$ %.2f\n\n"+
			"⚠️ _Caso precise cancelar ou reagendar, por favor, responda a esta mensagem._\n\n"+
			"Te aguardamos!",
		ap.ClientName,
		shop,
		ap.ServiceName,
		barberName(ap),
		timezone.FormatBR(ap.Date),
		ap.Time,
		ap.Price,
	)
}

// FirstName é a primeira palavra do nome.
func FirstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

func FeedbackRequest(shop, clientName string) string {
	return fmt.Sprintf(
		"Olá %s! 💈\nObrigado pela preferência hoje na %s!\n\n"+
			"O que achou do serviço? Seu feedback é muito importante para nós. ⭐",
		FirstName(clientName),
		shop,
	)
}

func AvailabilityShare(shop, date string, slots []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💈 *%s* \nOlá! Tenho os seguintes horários livres para hoje (%s):\n\n", shop, timezone.FormatBR(date))
	for _, s := range slots {
		b.WriteString("🕒 " + s + "\n")
	}
	b.WriteString("\nResponda essa mensagem para agendar!")
	return b.String()
}
