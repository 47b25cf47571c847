package audit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/kv"
)

func TestLoggerListFilters(t *testing.T) {
	l := audit.New(kv.NewMemory())
	ctx := t.Context()

	require.NoError(t, l.Log(ctx, "b1", "appointment_created", "appointment", "a1", nil))
	require.NoError(t, l.Log(ctx, "b1", "appointment_cancelled", "appointment", "a1", map[string]string{"reason": "cliente"}))
	require.NoError(t, l.Log(ctx, "b2", "client_created", "client", "c9", nil))

	all, err := l.List(ctx, audit.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 50, all.Limit)

	byEntity, err := l.List(ctx, audit.Filter{Entity: "appointment"})
	require.NoError(t, err)
	assert.Equal(t, 2, byEntity.Total)

	byAction, err := l.List(ctx, audit.Filter{Action: "appointment_cancelled"})
	require.NoError(t, err)
	require.Len(t, byAction.Logs, 1)
	assert.JSONEq(t, `{"reason":"cliente"}`, byAction.Logs[0].Metadata)
}

func TestLoggerPaginationAndCap(t *testing.T) {
	l := audit.New(kv.NewMemory())
	ctx := t.Context()

	for i := range audit.MaxEntries + 10 {
		require.NoError(t, l.Log(ctx, "", "login", "barber", fmt.Sprint(i), nil))
	}

	page, err := l.List(ctx, audit.Filter{Page: 2, Limit: 200})
	require.NoError(t, err)
	assert.Equal(t, audit.MaxEntries, page.Total)
	assert.Len(t, page.Logs, 200)

	beyond, err := l.List(ctx, audit.Filter{Page: 10, Limit: 200})
	require.NoError(t, err)
	assert.Empty(t, beyond.Logs)
	assert.NotNil(t, beyond.Logs)
}

func TestDispatcherFlushesOnClose(t *testing.T) {
	mem := kv.NewMemory()
	l := audit.New(mem)
	d := audit.NewDispatcher(l, zap.NewNop())

	d.Dispatch(audit.Event{Action: "appointment_completed", Entity: "appointment", EntityID: "a1"})
	d.Close()
	d.Close()

	page, err := l.List(t.Context(), audit.Filter{})
	require.NoError(t, err)
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "a1", page.Logs[0].EntityID)

	var nilDispatcher *audit.Dispatcher
	assert.NotPanics(t, func() { nilDispatcher.Dispatch(audit.Event{Action: "x"}) })
}
