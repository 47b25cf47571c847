package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// Repository é o que os casos de uso precisam do armazenamento de entidades.
// Erros de "não encontrado" vêm como httperr.BusinessError (<entidade>_not_found).
type Repository interface {
	// -------- Catálogos --------
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error

	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	ListServices(ctx context.Context) ([]models.Service, error)

	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	// -------- Appointment --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// CreateAppointmentIfFree grava ap só se Conflicts for falso, na mesma
	// seção crítica; caso contrário devolve httperr.ConflictError(slot_taken).
	CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error

	// UpdateAppointmentFunc aplica fn sobre a versão atual e grava na mesma
	// seção crítica: duas transições concorrentes nunca partem do mesmo estado.
	UpdateAppointmentFunc(ctx context.Context, id string, fn func(ap *models.Appointment) error) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
