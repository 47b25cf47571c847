package models

// Cliente simples, sem login. TotalSpent só muda por edição explícita.
type Client struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	LastVisit   string  `json:"last_visit"`
	Preferences string  `json:"preferences"`
	TotalSpent  float64 `json:"total_spent"`
}

// GuestClientID identifica reservas feitas pelo bot sem cadastro.
const (
	GuestClientID   = "whatsapp-guest"
	GuestClientName = "Cliente WhatsApp"
)
