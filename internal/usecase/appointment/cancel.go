package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	shop  Shop
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	shop Shop,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		shop:  shop,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) (*models.Appointment, error) {

	now := uc.shop.Now()
	ap, err := uc.repo.UpdateAppointmentFunc(ctx, appointmentID, func(ap *models.Appointment) error {
		return domain.Cancel(ap, now)
	})
	if err != nil {
		return nil, err
	}

	dispatchAudit(uc.audit, userID, "appointment_cancelled", "appointment", ap.ID, nil)

	return ap, nil
}
