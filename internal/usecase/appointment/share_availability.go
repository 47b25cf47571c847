package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/notify"
)

// ShareAvailability monta a mensagem de divulgação dos horários livres do
// dia, na visão "qualquer profissional". O link sai sem destinatário.
type ShareAvailability struct {
	availability *GetAvailability
	notifier     Notifier
	shop         Shop
}

func NewShareAvailability(
	availability *GetAvailability,
	notifier Notifier,
	shop Shop,
) *ShareAvailability {
	return &ShareAvailability{
		availability: availability,
		notifier:     notifier,
		shop:         shop,
	}
}

func (uc *ShareAvailability) Execute(ctx context.Context, date string) (*notify.Message, error) {
	if date == "" {
		date = uc.shop.Today()
	}

	av, err := uc.availability.Execute(ctx, AvailabilityInput{Date: date})
	if err != nil {
		return nil, err
	}
	if len(av.Free) == 0 {
		return nil, httperr.ErrValidation("date", "no_free_slots")
	}

	msg := uc.notifier.Dispatch(notify.Message{
		Kind: notify.KindAvailabilityShare,
		Text: notify.AvailabilityShare(uc.shop.Name, date, av.Free),
	})
	return &msg, nil
}
