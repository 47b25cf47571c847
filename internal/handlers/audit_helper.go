package handlers

import (
	"github.com/BruksfildServices01/barberpro/internal/audit"
)

func writeAudit(
	d *audit.Dispatcher,
	userID string,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}
