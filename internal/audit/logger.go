package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

const (
	Key = "barberpro_audit_logs"

	// MaxEntries limita o snapshot; os mais antigos saem primeiro.
	MaxEntries = 500
)

// Logger grava o trilho de auditoria como um snapshot JSON no KV.
type Logger struct {
	mu  sync.Mutex
	kv  kv.Store
	now func() time.Time
}

func New(store kv.Store) *Logger {
	return &Logger{kv: store, now: time.Now}
}

func (l *Logger) Log(
	ctx context.Context,
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	logs, err := l.load(ctx)
	if err != nil {
		return err
	}

	logs = append(logs, entry)
	if len(logs) > MaxEntries {
		logs = logs[len(logs)-MaxEntries:]
	}

	raw, err := json.Marshal(logs)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, Key, raw)
}

func (l *Logger) load(ctx context.Context) ([]models.AuditLog, error) {
	raw, ok, err := l.kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("load audit logs: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var logs []models.AuditLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, fmt.Errorf("decode audit logs: %w", err)
	}
	return logs, nil
}

// ======================================================
// Listagem
// ======================================================

type Filter struct {
	Action string
	Entity string
	From   time.Time // inclusivo; zero = sem limite
	To     time.Time // exclusivo; zero = sem limite

	Page  int
	Limit int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List devolve os registros mais recentes primeiro.
func (l *Logger) List(ctx context.Context, f Filter) (Page, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	l.mu.Lock()
	logs, err := l.load(ctx)
	l.mu.Unlock()
	if err != nil {
		return Page{}, err
	}

	matched := make([]models.AuditLog, 0, len(logs))
	for _, e := range logs {
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.Entity != "" && e.Entity != f.Entity {
			continue
		}
		if !f.From.IsZero() && e.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !e.CreatedAt.Before(f.To) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	out := Page{Page: f.Page, Limit: f.Limit, Total: len(matched), Logs: []models.AuditLog{}}

	offset := (f.Page - 1) * f.Limit
	if offset >= len(matched) {
		return out, nil
	}
	end := min(offset+f.Limit, len(matched))
	out.Logs = matched[offset:end]
	return out, nil
}
