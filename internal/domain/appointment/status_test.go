package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from domain.Status
		to   domain.Status
		ok   bool
	}{
		{domain.StatusPending, domain.StatusConfirmed, true},
		{domain.StatusPending, domain.StatusCancelled, true},
		{domain.StatusPending, domain.StatusCompleted, false},
		{domain.StatusConfirmed, domain.StatusCompleted, true},
		{domain.StatusConfirmed, domain.StatusCancelled, true},
		{domain.StatusConfirmed, domain.StatusConfirmed, false},
		{domain.StatusCompleted, domain.StatusCancelled, false},
		{domain.StatusCancelled, domain.StatusConfirmed, false},
		{domain.StatusConfirmed, domain.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			ap := models.Appointment{Status: string(tt.from)}
			err := domain.Transition(&ap, tt.to, fixedNow)

			if !tt.ok {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
				assert.Equal(t, string(tt.from), ap.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), ap.Status)
		})
	}
}

func TestTransitionTimestamps(t *testing.T) {
	ap := models.Appointment{Status: string(domain.StatusPending)}

	require.NoError(t, domain.Confirm(&ap, fixedNow))
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, fixedNow, *ap.ConfirmedAt)

	require.NoError(t, domain.Complete(&ap, fixedNow))
	require.NotNil(t, ap.CompletedAt)
	assert.Nil(t, ap.CancelledAt)
}

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, "Concluído", domain.StatusCompleted.Label())
	assert.True(t, domain.StatusCancelled.Terminal())
	assert.False(t, domain.StatusPending.Terminal())
	assert.False(t, domain.Status("scheduled").Valid())

	assert.Equal(t, domain.StatusConfirmed, domain.InitialStatus(models.ChannelBot))
	assert.Equal(t, domain.StatusPending, domain.InitialStatus(models.ChannelForm))
}

func TestConflicts(t *testing.T) {
	day := "2026-03-10"

	tests := []struct {
		name     string
		existing models.Appointment
		barberID string
		want     bool
	}{
		{"same barber", appt(day, "10:00", "b1", domain.StatusConfirmed), "b1", true},
		{"other barber", appt(day, "10:00", "b2", domain.StatusConfirmed), "b1", false},
		{"existing without barber", appt(day, "10:00", "", domain.StatusPending), "b1", true},
		{"request without barber", appt(day, "10:00", "b2", domain.StatusPending), "", true},
		{"cancelled", appt(day, "10:00", "b1", domain.StatusCancelled), "b1", false},
		{"other time", appt(day, "11:00", "b1", domain.StatusConfirmed), "b1", false},
		{"other date", appt("2026-03-11", "10:00", "b1", domain.StatusConfirmed), "b1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Conflicts([]models.Appointment{tt.existing}, day, "10:00", tt.barberID)
			assert.Equal(t, tt.want, got)
		})
	}
}
