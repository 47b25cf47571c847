package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	ServerPort string
	JWTSecret  string

	// Persistência (KV)
	StorageDriver string
	DBUrl         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	SeedDemoData  bool

	// Barbearia
	Timezone           string
	ShopName           string
	DefaultCountryCode string
	FormSlotStart      int
	FormSlotEnd        int

	// Bot
	BotThinkingDelay time.Duration
	BotWorkingHours  []string
	BotSessionIdle   time.Duration
	BotMaxSessions   int

	// IA
	GeminiAPIKey        string
	GeminiModel         string
	AITimeout           time.Duration
	AIRequestsPerMinute int

	CORSOrigins []string

	// Avatar (S3 compatível)
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	MercadoPagoAccessToken string
}

func Load() *Config {
	// .env é opcional
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "sql")),
		DBUrl:         getEnv("DATABASE_URL", "barberpro.db"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", ""),
		SeedDemoData:  getEnvBool("SEED_DEMO_DATA", true),

		Timezone:           getEnv("TIMEZONE", "America/Sao_Paulo"),
		ShopName:           getEnv("SHOP_NAME", "BarberPro"),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "55"),
		FormSlotStart:      getEnvInt("FORM_SLOT_START", 9),
		FormSlotEnd:        getEnvInt("FORM_SLOT_END", 19),

		BotThinkingDelay: getEnvDuration("BOT_THINKING_DELAY", 800*time.Millisecond),
		BotWorkingHours: getEnvList(
			"BOT_WORKING_HOURS",
			[]string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"},
		),
		BotSessionIdle: getEnvDuration("BOT_SESSION_IDLE", 30*time.Minute),
		BotMaxSessions: getEnvInt("BOT_MAX_SESSIONS", 1000),

		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:           getEnvDuration("AI_TIMEOUT", 15*time.Second),
		AIRequestsPerMinute: getEnvInt("AI_REQUESTS_PER_MINUTE", 30),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) AvatarStorageEnabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}
