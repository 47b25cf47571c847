// Package app monta as dependências compartilhadas pelos binários.
package app

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/chatbot"
	"github.com/BruksfildServices01/barberpro/internal/config"
	dbpkg "github.com/BruksfildServices01/barberpro/internal/db"
	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

type App struct {
	Config *config.Config
	Log    *zap.Logger

	Store    *store.Store
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
	Notifier *notify.Dispatcher
	Stylist  *ai.Stylist
	Shop     ucAppointment.Shop
	Bot      *chatbot.Registry

	FormCatalogue domain.Catalogue

	closers []func() error
}

// New abre o armazenamento, carrega (ou semeia) as coleções e sobe os
// workers. Close desfaz tudo na ordem inversa.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	loc := timezone.Location(cfg.Timezone)
	a.Shop = ucAppointment.Shop{Name: cfg.ShopName, Loc: loc, Clock: timezone.SystemClock}

	botCatalogue, err := domain.NewCatalogue(cfg.BotWorkingHours)
	if err != nil {
		return nil, fmt.Errorf("bot working hours: %w", err)
	}
	a.FormCatalogue = domain.StepCatalogue(cfg.FormSlotStart, cfg.FormSlotEnd, 30)
	if len(a.FormCatalogue) == 0 {
		return nil, fmt.Errorf("form slots: %w", domain.ErrEmptyCatalogue)
	}

	// ======================================================
	// 🔧 PERSISTÊNCIA
	// ======================================================
	backend, err := a.openKV(cfg)
	if err != nil {
		return nil, err
	}

	var seed store.Seed
	if cfg.SeedDemoData {
		if seed, err = store.DemoData(a.Shop.Today()); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.Store, err = store.Open(ctx, backend, log, seed)
	if err != nil {
		a.Close()
		return nil, err
	}

	// ======================================================
	// 🔧 WORKERS
	// ======================================================
	a.AuditLog = audit.New(backend)
	a.Audit = audit.NewDispatcher(a.AuditLog, log)
	a.Notifier = notify.NewDispatcher(notify.NewLogSink(log), cfg.DefaultCountryCode, log)

	// O bot é fechado antes dos despachantes que ele alimenta.
	a.closers = append(a.closers,
		func() error { a.Notifier.Close(); return nil },
		func() error { a.Audit.Close(); return nil },
	)

	// ======================================================
	// 🧠 IA
	// ======================================================
	var gen ai.Generator
	if cfg.AIEnabled() {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini unavailable, using fallbacks", zap.Error(err))
		} else {
			gen = client
			a.closers = append(a.closers, client.Close)
		}
	}
	a.Stylist = ai.NewStylist(gen, ai.Options{
		Timeout:           cfg.AITimeout,
		RequestsPerMinute: cfg.AIRequestsPerMinute,
		Clock:             a.Shop.Now,
	}, log)

	// ======================================================
	// 💬 BOT
	// ======================================================
	booker := ucAppointment.NewBookFromBot(a.Store, a.Audit, a.Shop)
	a.Bot = chatbot.NewRegistry(a.Store, booker, chatbot.Config{
		ShopName:  cfg.ShopName,
		Catalogue: botCatalogue,
		Location:  loc,
		Clock:     timezone.SystemClock,
		Logger:    log,
	}, cfg.BotThinkingDelay,
		chatbot.WithIdleTimeout(cfg.BotSessionIdle),
		chatbot.WithMaxSessions(cfg.BotMaxSessions),
	)
	a.closers = append(a.closers, func() error { a.Bot.Shutdown(); return nil })

	return a, nil
}

func (a *App) openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		a.Log.Warn("using in-memory storage, data is lost on restart")
		return kv.NewMemory(), nil

	case "redis":
		client, err := dbpkg.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeRedis(client))
		return infraRepo.NewKVRedisRepository(client, cfg.RedisPrefix), nil

	case "sql", "":
		gdb, err := dbpkg.NewDB(cfg.DBUrl, !cfg.IsProduction())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeDB(gdb))
		return infraRepo.NewKVGormRepository(gdb), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func closeRedis(c *redis.Client) func() error { return c.Close }

func closeDB(db *gorm.DB) func() error {
	return func() error { return dbpkg.Close(db) }
}

// Close encerra na ordem inversa da abertura.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Log.Error("shutdown", zap.Error(err))
		}
	}
	a.closers = nil
}
