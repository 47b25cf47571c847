package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

var ErrNoInitPoint = errors.New("checkout preference without init point")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPago cria preferências de checkout com um item por agendamento.
type MercadoPago struct {
	client preferenceCreator
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreateLink(ctx context.Context, ap models.Appointment) (string, error) {
	res, err := m.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         ap.ServiceID,
				Title:      ap.ServiceName,
				Quantity:   1,
				UnitPrice:  ap.Price,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: ap.ID,
	})
	if err != nil {
		return "", err
	}
	if res.InitPoint == "" {
		return "", ErrNoInitPoint
	}
	return res.InitPoint, nil
}
