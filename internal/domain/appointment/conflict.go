package appointment

import "github.com/BruksfildServices01/barberpro/internal/models"

// Conflicts é a checagem final do autoatendimento antes de gravar.
//
// Um agendamento ativo no mesmo dia e hora conflita quando ele não tem
// profissional, quando o pedido não tem profissional, ou quando ambos são do
// mesmo profissional.
func Conflicts(
	appointments []models.Appointment,
	date string,
	hour string,
	barberID string,
) bool {
	for _, ap := range appointments {
		if ap.Date != date || ap.Time != hour {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if ap.BarberID == "" || barberID == "" || ap.BarberID == barberID {
			return true
		}
	}
	return false
}
