package appointment

import (
	"time"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

// Shop reúne o que os casos de uso precisam saber da barbearia: nome
// exibido nas mensagens, fuso e relógio.
type Shop struct {
	Name  string
	Loc   *time.Location
	Clock timezone.Clock
}

func (s Shop) Now() time.Time {
	clock := s.Clock
	if clock == nil {
		clock = timezone.SystemClock
	}
	return clock().In(s.location())
}

func (s Shop) Today() string {
	return s.Now().Format(timezone.DateLayout)
}

func (s Shop) location() *time.Location {
	if s.Loc == nil {
		return timezone.Location(timezone.DefaultTimezone)
	}
	return s.Loc
}

// Notifier é o despachante de mensagens de WhatsApp.
type Notifier interface {
	Dispatch(msg notify.Message) notify.Message
}

func dispatchAudit(d *audit.Dispatcher, userID, action, entity, entityID string, meta any) {
	d.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
