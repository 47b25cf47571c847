package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/notify"
)

// SendReceipt reabre uma reserva existente e, se pedido, reenvia o
// comprovante. Aqui o padrão é não notificar.
type SendReceipt struct {
	repo     domain.Repository
	notifier Notifier
	shop     Shop
}

func NewSendReceipt(
	repo domain.Repository,
	notifier Notifier,
	shop Shop,
) *SendReceipt {
	return &SendReceipt{
		repo:     repo,
		notifier: notifier,
		shop:     shop,
	}
}

func (uc *SendReceipt) Execute(
	ctx context.Context,
	appointmentID string,
	send *bool,
) (*BookingResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	out := &BookingResult{Appointment: ap}
	if send == nil || !*send {
		return out, nil
	}

	var phone string
	if c, err := uc.repo.GetClient(ctx, ap.ClientID); err == nil {
		phone = c.Phone
	}

	msg := uc.notifier.Dispatch(notify.Message{
		Kind:          notify.KindBookingReceipt,
		AppointmentID: ap.ID,
		ClientID:      ap.ClientID,
		Phone:         phone,
		Text:          notify.BookingConfirmation(uc.shop.Name, *ap),
	})
	out.Notification = &msg

	return out, nil
}
