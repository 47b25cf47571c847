package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

func appt(date, hour, barberID string, status domain.Status) models.Appointment {
	return models.Appointment{
		ID:       date + hour + barberID,
		BarberID: barberID,
		Date:     date,
		Time:     hour,
		Status:   string(status),
	}
}

func isSubsequence(sub, of []string) bool {
	i := 0
	for _, s := range of {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

func TestCatalogues(t *testing.T) {
	assert.Len(t, domain.FormCatalogue, 21)
	assert.Equal(t, "09:00", domain.FormCatalogue[0])
	assert.Equal(t, "09:30", domain.FormCatalogue[1])
	assert.Equal(t, "19:00", domain.FormCatalogue[20])

	assert.Len(t, domain.ShareCatalogue, 11)
	assert.NotContains(t, domain.BotCatalogue, "12:00")

	_, err := domain.NewCatalogue(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCatalogue)

	_, err = domain.NewCatalogue([]string{"10:00", "09:00"})
	assert.ErrorIs(t, err, domain.ErrUnsortedCatalogue)

	_, err = domain.NewCatalogue([]string{"25:00"})
	assert.Error(t, err)

	c, err := domain.NewCatalogue([]string{"9:00", "9:30"})
	require.NoError(t, err)
	assert.Equal(t, domain.Catalogue{"09:00", "09:30"}, c)
}

func TestFreeSlots(t *testing.T) {
	cat := domain.MustCatalogue("09:00", "10:00", "11:00")
	day := "2026-03-10"

	t.Run("empty collection returns whole catalogue", func(t *testing.T) {
		free, err := domain.FreeSlots(cat, day, "", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, free)
	})

	t.Run("full day is empty but not nil", func(t *testing.T) {
		appts := []models.Appointment{
			appt(day, "09:00", "b1", domain.StatusPending),
			appt(day, "10:00", "", domain.StatusConfirmed),
			appt(day, "11:00", "b2", domain.StatusCompleted),
		}
		free, err := domain.FreeSlots(cat, day, "", appts)
		require.NoError(t, err)
		assert.NotNil(t, free)
		assert.Empty(t, free)
	})

	t.Run("cancelled never occupies", func(t *testing.T) {
		appts := []models.Appointment{appt(day, "10:00", "b1", domain.StatusCancelled)}
		free, err := domain.FreeSlots(cat, day, "b1", appts)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, free)
	})

	t.Run("other dates ignored", func(t *testing.T) {
		appts := []models.Appointment{appt("2026-03-11", "10:00", "b1", domain.StatusPending)}
		free, err := domain.FreeSlots(cat, day, "b1", appts)
		require.NoError(t, err)
		assert.Len(t, free, 3)
	})

	t.Run("any professional booking does not block a barber view", func(t *testing.T) {
		appts := []models.Appointment{appt(day, "10:00", "", domain.StatusPending)}

		barberView, err := domain.FreeSlots(cat, day, "b1", appts)
		require.NoError(t, err)
		assert.Contains(t, barberView, "10:00")

		anyView, err := domain.FreeSlots(cat, day, "", appts)
		require.NoError(t, err)
		assert.NotContains(t, anyView, "10:00")
	})

	t.Run("barber view only sees that barber", func(t *testing.T) {
		appts := []models.Appointment{appt(day, "09:00", "b2", domain.StatusConfirmed)}
		free, err := domain.FreeSlots(cat, day, "b1", appts)
		require.NoError(t, err)
		assert.Contains(t, free, "09:00")
	})

	t.Run("output is a subsequence of the catalogue", func(t *testing.T) {
		appts := []models.Appointment{
			appt(day, "10:00", "b1", domain.StatusPending),
			appt(day, "13:00", "b1", domain.StatusPending),
		}
		for _, barber := range []string{"", "b1", "b2"} {
			free, err := domain.FreeSlots(domain.FormCatalogue, day, barber, appts)
			require.NoError(t, err)
			assert.True(t, isSubsequence(free, domain.FormCatalogue))
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := domain.FreeSlots(nil, day, "", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCatalogue)

		_, err = domain.FreeSlots(domain.Catalogue{"10:00", "09:00"}, day, "", nil)
		assert.ErrorIs(t, err, domain.ErrUnsortedCatalogue)

		_, err = domain.FreeSlots(cat, "2026-02-30", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestCancelFreesSlotIdempotently(t *testing.T) {
	cat := domain.MustCatalogue("09:00", "10:00")
	day := "2026-03-10"
	ap := appt(day, "10:00", "b1", domain.StatusConfirmed)

	before, err := domain.FreeSlots(cat, day, "b1", []models.Appointment{ap})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, before)

	// Cancelar uma vez libera; a segunda tentativa é recusada e não muda nada.
	require.NoError(t, domain.Cancel(&ap, fixedNow))
	once, err := domain.FreeSlots(cat, day, "b1", []models.Appointment{ap})
	require.NoError(t, err)

	assert.Error(t, domain.Cancel(&ap, fixedNow))
	twice, err := domain.FreeSlots(cat, day, "b1", []models.Appointment{ap})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00"}, once)
	assert.Equal(t, once, twice)
}

func TestNormalizeTime(t *testing.T) {
	for in, want := range map[string]string{"9:00": "09:00", "14:30": "14:30", "00:00": "00:00"} {
		got, ok := domain.NormalizeTime(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"24:00", "12:60", "1430", "", "ab:cd"} {
		_, ok := domain.NormalizeTime(in)
		assert.False(t, ok, in)
	}
}
