package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type BotBookingInput struct {
	ServiceID string
	BarberID  string
	Date      string
	Time      string
}

// BookFromBot grava a reserva do autoatendimento. Diferente do formulário,
// checa conflito antes de gravar e já nasce confirmada.
type BookFromBot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	shop  Shop
}

func NewBookFromBot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	shop Shop,
) *BookFromBot {
	return &BookFromBot{
		repo:  repo,
		audit: audit,
		shop:  shop,
	}
}

func (uc *BookFromBot) Execute(
	ctx context.Context,
	in BotBookingInput,
) (*models.Appointment, error) {

	hour, ok := domain.NormalizeTime(in.Time)
	if !ok {
		return nil, httperr.ErrValidation("time", "invalid_time")
	}
	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrValidation("date", "invalid_date")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrValidation("service_id", "service_not_found")
	}

	barberName := models.AnyBarberName
	if in.BarberID != "" {
		b, err := uc.repo.GetBarber(ctx, in.BarberID)
		if err != nil {
			return nil, httperr.ErrValidation("barber_id", "barber_not_found")
		}
		barberName = b.Name
	}

	now := uc.shop.Now()
	ap := &models.Appointment{
		ClientID:    models.GuestClientID,
		ClientName:  models.GuestClientName,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Price:       service.Price,
		BarberID:    in.BarberID,
		BarberName:  barberName,
		Date:        in.Date,
		Time:        hour,
		Status:      string(domain.InitialStatus(models.ChannelBot)),
		Channel:     models.ChannelBot,
		ConfirmedAt: &now,
		CreatedAt:   now,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsConflict(err) {
			dispatchAudit(uc.audit, "", "booking_conflict", "appointment", "", map[string]string{
				"date":      ap.Date,
				"time":      ap.Time,
				"barber_id": ap.BarberID,
			})
		}
		return nil, err
	}

	dispatchAudit(uc.audit, "", "appointment_created", "appointment", ap.ID, map[string]string{
		"channel": ap.Channel,
		"date":    ap.Date,
		"time":    ap.Time,
	})

	return ap, nil
}
