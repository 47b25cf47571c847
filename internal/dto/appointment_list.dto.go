package dto

import (
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type AppointmentListDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	ClientName  string  `json:"client_name"`
	ServiceName string  `json:"service_name"`
	BarberName  string  `json:"barber_name"`
	Price       float64 `json:"price"`
	Channel     string  `json:"channel"`
}

func NewAppointmentList(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		barber := ap.BarberName
		if barber == "" {
			barber = models.AnyBarberName
		}
		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			StatusLabel: domain.Status(ap.Status).Label(),
			ClientName:  ap.ClientName,
			ServiceName: ap.ServiceName,
			BarberName:  barber,
			Price:       ap.Price,
			Channel:     ap.Channel,
		})
	}
	return out
}
