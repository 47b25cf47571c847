package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("BOT_WORKING_HOURS", "")
	t.Setenv("BOT_THINKING_DELAY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("BOT_SESSION_IDLE", "")
	t.Setenv("BOT_MAX_SESSIONS", "")

	cfg := Load()

	assert.Equal(t, "sql", cfg.StorageDriver)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, "55", cfg.DefaultCountryCode)
	assert.Equal(t, 800*time.Millisecond, cfg.BotThinkingDelay)
	assert.Len(t, cfg.BotWorkingHours, 9)
	assert.NotContains(t, cfg.BotWorkingHours, "12:00")
	assert.Equal(t, 30*time.Minute, cfg.BotSessionIdle)
	assert.Equal(t, 1000, cfg.BotMaxSessions)
	assert.False(t, cfg.AIEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BOT_WORKING_HOURS", " 08:00, 09:00 ,,")
	t.Setenv("BOT_THINKING_DELAY", "0s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("BOT_SESSION_IDLE", "2m")

	cfg := Load()

	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"08:00", "09:00"}, cfg.BotWorkingHours)
	assert.Equal(t, time.Duration(0), cfg.BotThinkingDelay)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, 2*time.Minute, cfg.BotSessionIdle)
}
