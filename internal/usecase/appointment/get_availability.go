package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
)

type AvailabilityInput struct {
	Date     string
	BarberID string
}

type Availability struct {
	Date     string   `json:"date"`
	BarberID string   `json:"barber_id,omitempty"`
	Free     []string `json:"free"`
}

// GetAvailability aplica o resolvedor de horários sobre um catálogo fixo.
type GetAvailability struct {
	repo      domain.Repository
	catalogue domain.Catalogue
}

func NewGetAvailability(repo domain.Repository, catalogue domain.Catalogue) *GetAvailability {
	return &GetAvailability{repo: repo, catalogue: catalogue}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	if !domain.ValidDate(in.Date) {
		return nil, httperr.ErrValidation("date", "invalid_date")
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	free, err := domain.FreeSlots(uc.catalogue, in.Date, in.BarberID, appointments)
	if err != nil {
		return nil, err
	}

	return &Availability{Date: in.Date, BarberID: in.BarberID, Free: free}, nil
}
