package models

import "time"

// Barber é ao mesmo tempo profissional da agenda e usuário do painel.
type Barber struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Phone        string `json:"phone"`
	Avatar       string `json:"avatar,omitempty"`
}

// Session é o barbeiro logado no momento.
type Session struct {
	BarberID  string    `json:"barber_id"`
	StartedAt time.Time `json:"started_at"`
}

// AnyBarberName é exibido quando a reserva não escolhe profissional.
const AnyBarberName = "Barbearia"
