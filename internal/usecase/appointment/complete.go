package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/notify"
)

type CompleteResult struct {
	Appointment  *models.Appointment `json:"appointment"`
	Notification notify.Message      `json:"notification"`
}

// CompleteAppointment é a única transição que avisa o cliente: pede feedback.
type CompleteAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	shop     Shop
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
	shop Shop,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		shop:     shop,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) (*CompleteResult, error) {

	now := uc.shop.Now()
	ap, err := uc.repo.UpdateAppointmentFunc(ctx, appointmentID, func(ap *models.Appointment) error {
		return domain.Complete(ap, now)
	})
	if err != nil {
		return nil, err
	}

	dispatchAudit(uc.audit, userID, "appointment_completed", "appointment", ap.ID, nil)

	// Cliente apagado ou convidado do bot: segue sem telefone.
	var phone string
	if c, err := uc.repo.GetClient(ctx, ap.ClientID); err == nil {
		phone = c.Phone
	}

	msg := uc.notifier.Dispatch(notify.Message{
		Kind:          notify.KindFeedbackRequest,
		AppointmentID: ap.ID,
		ClientID:      ap.ClientID,
		Phone:         phone,
		Text:          notify.FeedbackRequest(uc.shop.Name, ap.ClientName),
	})

	return &CompleteResult{Appointment: ap, Notification: msg}, nil
}
