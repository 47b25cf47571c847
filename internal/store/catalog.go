package store

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// ===============================
// Clients
// ===============================

func (s *Store) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.clients), nil
}

// SearchClients filtra por trecho do nome (sem diferenciar maiúsculas) ou
// do telefone. Busca vazia devolve todos.
func (s *Store) SearchClients(_ context.Context, query string) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clone(s.clients), nil
	}

	out := make([]models.Client, 0)
	for _, c := range s.clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetClient(_ context.Context, id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	c := s.clients[i]
	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = newID()
	}
	s.clients = append(s.clients, *c)
	s.persist(ctx, KeyClients, s.clients)
	return nil
}

func (s *Store) UpdateClient(ctx context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.clients, func(x models.Client) bool { return x.ID == c.ID })
	if i < 0 {
		return httperr.ErrBusiness("client_not_found")
	}
	s.clients[i] = *c
	s.persist(ctx, KeyClients, s.clients)
	return nil
}

// DeleteClient não apaga os agendamentos do cliente.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.clients, func(c models.Client) bool { return c.ID == id })
	if i < 0 {
		return httperr.ErrBusiness("client_not_found")
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	s.persist(ctx, KeyClients, s.clients)
	return nil
}

// ===============================
// Services
// ===============================

// ListServices devolve na ordem de cadastro, que é a numeração do bot.
func (s *Store) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clone(s.services), nil
}

func (s *Store) GetService(_ context.Context, id string) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.services, func(x models.Service) bool { return x.ID == id })
	if i < 0 {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	svc := s.services[i]
	return &svc, nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if svc.ID == "" {
		svc.ID = newID()
	}
	s.services = append(s.services, *svc)
	s.persist(ctx, KeyServices, s.services)
	return nil
}

// ReplaceService troca o registro inteiro; agendamentos antigos mantêm suas cópias.
func (s *Store) ReplaceService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.services, func(x models.Service) bool { return x.ID == svc.ID })
	if i < 0 {
		return httperr.ErrBusiness("service_not_found")
	}
	s.services[i] = *svc
	s.persist(ctx, KeyServices, s.services)
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.services, func(x models.Service) bool { return x.ID == id })
	if i < 0 {
		return httperr.ErrBusiness("service_not_found")
	}
	s.services = append(s.services[:i], s.services[i+1:]...)
	s.persist(ctx, KeyServices, s.services)
	return nil
}
