package dto

import "github.com/BruksfildServices01/barberpro/internal/models"

// BarberDTO nunca carrega o hash da senha.
type BarberDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

func NewBarber(b models.Barber) BarberDTO {
	return BarberDTO{
		ID:     b.ID,
		Name:   b.Name,
		Email:  b.Email,
		Phone:  b.Phone,
		Avatar: b.Avatar,
	}
}

func NewBarbers(list []models.Barber) []BarberDTO {
	out := make([]BarberDTO, 0, len(list))
	for _, b := range list {
		out = append(out, NewBarber(b))
	}
	return out
}
