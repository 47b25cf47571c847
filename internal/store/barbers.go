package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// ===============================
// Barbers (usuários do painel)
// ===============================

func (s *Store) ListBarbers(_ context.Context) ([]models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.barbers), nil
}

func (s *Store) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.barbers, func(b models.Barber) bool { return b.ID == id })
	if i < 0 {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	b := s.barbers[i]
	return &b, nil
}

func (s *Store) GetBarberByEmail(_ context.Context, email string) (*models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.barbers, func(b models.Barber) bool { return sameEmail(b.Email, email) })
	if i < 0 {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	b := s.barbers[i]
	return &b, nil
}

// CreateBarber exige e-mail único.
func (s *Store) CreateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.barbers, func(x models.Barber) bool { return sameEmail(x.Email, b.Email) }) >= 0 {
		return httperr.ErrConflict("email_already_exists")
	}

	if b.ID == "" {
		b.ID = newID()
	}
	s.barbers = append(s.barbers, *b)
	s.persist(ctx, KeyUsers, s.barbers)
	return nil
}

func (s *Store) UpdateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.barbers, func(x models.Barber) bool { return x.ID == b.ID })
	if i < 0 {
		return httperr.ErrBusiness("barber_not_found")
	}
	taken := indexOf(s.barbers, func(x models.Barber) bool {
		return x.ID != b.ID && sameEmail(x.Email, b.Email)
	})
	if taken >= 0 {
		return httperr.ErrConflict("email_already_exists")
	}

	s.barbers[i] = *b
	s.persist(ctx, KeyUsers, s.barbers)
	return nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ===============================
// Session
// ===============================

func (s *Store) Session(_ context.Context) (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, false
	}
	sess := *s.session
	return &sess, true
}

func (s *Store) StartSession(ctx context.Context, barberID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.barbers, func(b models.Barber) bool { return b.ID == barberID }) < 0 {
		return httperr.ErrBusiness("barber_not_found")
	}

	s.session = &models.Session{BarberID: barberID, StartedAt: now}
	s.persist(ctx, KeySession, s.session)
	return nil
}

func (s *Store) EndSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := s.kv.Delete(ctx, KeySession); err != nil {
		s.log.Error("store session delete failed", zap.Error(err))
	}
	return nil
}
