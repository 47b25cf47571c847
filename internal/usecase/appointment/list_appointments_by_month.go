package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
	barberID string,
) ([]dto.AppointmentListDTO, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, httperr.ErrValidation("month", "invalid_date")
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	inMonth := filterAppointments(appointments, func(ap models.Appointment) bool {
		return len(ap.Date) == len(prefix)+2 &&
			ap.Date[:len(prefix)] == prefix &&
			(barberID == "" || ap.BarberID == barberID)
	})
	sortByDateTime(inMonth)

	return dto.NewAppointmentList(inMonth), nil
}
