package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

// Checkout cria um link de pagamento para uma reserva.
type Checkout interface {
	CreateLink(ctx context.Context, ap models.Appointment) (string, error)
}

type PaymentLink struct {
	AppointmentID string  `json:"appointment_id"`
	Amount        float64 `json:"amount"`
	URL           string  `json:"url"`
}

type CreatePaymentLink struct {
	repo     domain.Repository
	checkout Checkout
}

// NewCreatePaymentLink aceita checkout nil (pagamento desligado).
func NewCreatePaymentLink(repo domain.Repository, checkout Checkout) *CreatePaymentLink {
	return &CreatePaymentLink{repo: repo, checkout: checkout}
}

func (uc *CreatePaymentLink) Execute(ctx context.Context, appointmentID string) (*PaymentLink, error) {
	if uc.checkout == nil {
		return nil, httperr.ErrBusiness("payment_unavailable")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	url, err := uc.checkout.CreateLink(ctx, *ap)
	if err != nil {
		return nil, httperr.ErrExternal("mercadopago", err)
	}

	return &PaymentLink{AppointmentID: ap.ID, Amount: ap.Price, URL: url}, nil
}
