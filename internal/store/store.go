// Package store holds the shop's collections in memory and writes the full
// collection snapshot to the KV collaborator after every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// Chaves fixas do armazenamento.
const (
	KeyUsers        = "barberpro_users"
	KeySession      = "barberpro_session"
	KeyAppointments = "barberpro_appointments"
	KeyClients      = "barberpro_clients"
	KeyServices     = "barberpro_services"
)

type Store struct {
	mu  sync.Mutex
	kv  kv.Store
	log *zap.Logger

	barbers      []models.Barber
	clients      []models.Client
	services     []models.Service
	appointments []models.Appointment
	session      *models.Session
}

// Open carrega cada coleção do KV; chaves ausentes recebem o conteúdo de
// seed (que pode ser vazio) e são gravadas imediatamente.
func Open(ctx context.Context, store kv.Store, log *zap.Logger, seed Seed) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{kv: store, log: log}
	seed = seed.withEmptyCollections()

	steps := []struct {
		key  string
		dst  any
		seed any
	}{
		{KeyUsers, &s.barbers, seed.Barbers},
		{KeyClients, &s.clients, seed.Clients},
		{KeyServices, &s.services, seed.Services},
		{KeyAppointments, &s.appointments, seed.Appointments},
	}

	for _, st := range steps {
		found, err := load(ctx, store, st.key, st.dst)
		if err != nil {
			return nil, err
		}
		if found {
			continue
		}

		raw, err := json.Marshal(st.seed)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, st.dst); err != nil {
			return nil, err
		}
		if err := store.Set(ctx, st.key, raw); err != nil {
			return nil, fmt.Errorf("seed %s: %w", st.key, err)
		}
	}

	var sess models.Session
	found, err := load(ctx, store, KeySession, &sess)
	if err != nil {
		return nil, err
	}
	if found && sess.BarberID != "" {
		s.session = &sess
	}

	log.Info("store loaded",
		zap.Int("barbers", len(s.barbers)),
		zap.Int("clients", len(s.clients)),
		zap.Int("services", len(s.services)),
		zap.Int("appointments", len(s.appointments)),
	)

	return s, nil
}

func load(ctx context.Context, store kv.Store, key string, dst any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// persist grava o snapshot inteiro. Chamado com s.mu travado.
// Falhas são registradas e não voltam para quem chamou.
func (s *Store) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error("store encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.log.Error("store persist failed", zap.String("key", key), zap.Error(err))
	}
}

func newID() string {
	return uuid.NewString()
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i := range items {
		if match(items[i]) {
			return i
		}
	}
	return -1
}
