package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestTodayUsesShopTimezone(t *testing.T) {
	// 01:30 UTC ainda é o dia anterior em São Paulo (UTC-3).
	clock := Fixed(time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC))

	assert.Equal(t, "2026-03-09", Today(clock, Location(DefaultTimezone)))
	assert.Equal(t, "2026-03-10", Today(clock, time.UTC))
}

func TestFormatBR(t *testing.T) {
	assert.Equal(t, "05/11/2026", FormatBR("2026-11-05"))
	assert.Equal(t, "garbage", FormatBR("garbage"))
}
