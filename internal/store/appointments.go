package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// ===============================
// Appointments
// ===============================

func (s *Store) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.appointments), nil
}

func (s *Store) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	ap := s.appointments[i]
	return &ap, nil
}

func (s *Store) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertAppointment(ctx, ap)
	return nil
}

func (s *Store) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.Conflicts(s.appointments, ap.Date, ap.Time, ap.BarberID) {
		s.log.Info("booking conflict",
			zap.String("date", ap.Date),
			zap.String("time", ap.Time),
			zap.String("barber_id", ap.BarberID),
		)
		return httperr.ErrConflict("slot_taken")
	}

	s.insertAppointment(ctx, ap)
	return nil
}

func (s *Store) insertAppointment(ctx context.Context, ap *models.Appointment) {
	if ap.ID == "" {
		ap.ID = newID()
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}

	s.appointments = append(s.appointments, *ap)
	s.persist(ctx, KeyAppointments, s.appointments)
}

// UpdateAppointmentFunc relê o agendamento, aplica fn e grava, tudo na mesma
// seção crítica. Se fn falhar nada é gravado e o erro volta como veio.
func (s *Store) UpdateAppointmentFunc(
	ctx context.Context,
	id string,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap := s.appointments[i]
	if err := fn(&ap); err != nil {
		return nil, err
	}

	s.appointments[i] = ap
	s.persist(ctx, KeyAppointments, s.appointments)
	return &ap, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if i < 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}

	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
	s.persist(ctx, KeyAppointments, s.appointments)
	return nil
}

var _ domain.Repository = (*Store)(nil)
