package store

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

// Seed é o conteúdo inicial de cada coleção ainda não gravada.
type Seed struct {
	Barbers      []models.Barber
	Clients      []models.Client
	Services     []models.Service
	Appointments []models.Appointment
}

func (s Seed) withEmptyCollections() Seed {
	if s.Barbers == nil {
		s.Barbers = []models.Barber{}
	}
	if s.Clients == nil {
		s.Clients = []models.Client{}
	}
	if s.Services == nil {
		s.Services = []models.Service{}
	}
	if s.Appointments == nil {
		s.Appointments = []models.Appointment{}
	}
	return s
}

const demoPassword = "123"

// DemoServices é o cardápio da barbearia de demonstração, na ordem do bot.
func DemoServices() []models.Service {
	return []models.Service{
		{ID: "1", Name: "Corte Degrade", Price: 45, DurationMinutes: 45},
		{ID: "2", Name: "Barba Terapia", Price: 35, DurationMinutes: 30},
		{ID: "3", Name: "Combo (Corte + Barba)", Price: 70, DurationMinutes: 60},
		{ID: "4", Name: "Pezinho / Acabamento", Price: 15, DurationMinutes: 15},
	}
}

// DemoData monta a barbearia de demonstração com a agenda de today
// (YYYY-MM-DD). As senhas dos barbeiros são "123".
func DemoData(today string) (Seed, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return Seed{}, fmt.Errorf("hash demo password: %w", err)
	}

	created := time.Now()

	return Seed{
		Barbers: []models.Barber{
			{
				ID:           "b1",
				Name:         "Mestre Navalha",
				Email:        "admin@barber.com",
				PasswordHash: string(hash),
				Phone:        "(11) 99999-0001",
				Avatar:       "https://images.unsplash.com/photo-1503443207922-dff7d543fd0e?w=200",
			},
			{
				ID:           "b2",
				Name:         "João Tesoura",
				Email:        "joao@barber.com",
				PasswordHash: string(hash),
				Phone:        "(11) 99999-0002",
			},
		},
		Clients: []models.Client{
			{ID: "c1", Name: "Carlos Silva", Phone: "(11) 99999-1234", LastVisit: "2023-10-15", Preferences: "Gosta de café sem açúcar, conversa sobre futebol.", TotalSpent: 450},
			{ID: "c2", Name: "Roberto Almeida", Phone: "(11) 98888-5678", LastVisit: "2023-10-20", Preferences: "Prefere silêncio, corte rápido.", TotalSpent: 120},
			{ID: "c3", Name: "João Souza", Phone: "(11) 97777-9012", LastVisit: "2023-10-25", Preferences: "Sempre pede a pomada efeito matte.", TotalSpent: 890},
		},
		Services: DemoServices(),
		Appointments: []models.Appointment{
			{ID: "a1", ClientID: "c1", ClientName: "Carlos Silva", ServiceID: "3", ServiceName: "Combo (Corte + Barba)", Price: 70, BarberID: "b1", BarberName: "Mestre Navalha", Date: today, Time: "10:00", Status: "confirmed", Channel: models.ChannelForm, CreatedAt: created},
			{ID: "a2", ClientID: "c2", ClientName: "Roberto Almeida", ServiceID: "1", ServiceName: "Corte Degrade", Price: 45, BarberID: "b2", BarberName: "João Tesoura", Date: today, Time: "14:00", Status: "pending", Channel: models.ChannelForm, CreatedAt: created},
			{ID: "a3", ClientID: "c3", ClientName: "João Souza", ServiceID: "2", ServiceName: "Barba Terapia", Price: 35, BarberID: "b1", BarberName: "Mestre Navalha", Date: today, Time: "16:30", Status: "completed", Channel: models.ChannelForm, CreatedAt: created},
		},
	}, nil
}
