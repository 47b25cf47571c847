package models

import "time"

// Appointment guarda cópias (nome, preço) do cliente, serviço e barbeiro no
// momento da reserva; edições posteriores dessas entidades não o alteram.
type Appointment struct {
	ID string `json:"id"`

	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`

	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`

	BarberID   string `json:"barber_id,omitempty"`
	BarberName string `json:"barber_name,omitempty"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM

	Status  string `json:"status"`
	Channel string `json:"channel"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	ChannelForm = "form"
	ChannelBot  = "bot"
)
