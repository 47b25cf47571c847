package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/dto"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute devolve a agenda do dia por horário; barberID vazio = todos.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
	barberID string,
) ([]dto.AppointmentListDTO, error) {

	if !domain.ValidDate(date) {
		return nil, httperr.ErrValidation("date", "invalid_date")
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	day := filterAppointments(appointments, func(ap models.Appointment) bool {
		return ap.Date == date && (barberID == "" || ap.BarberID == barberID)
	})
	sortByDateTime(day)

	return dto.NewAppointmentList(day), nil
}

func filterAppointments(in []models.Appointment, keep func(models.Appointment) bool) []models.Appointment {
	out := make([]models.Appointment, 0, len(in))
	for _, ap := range in {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	return out
}

func sortByDateTime(list []models.Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}
