package appointment_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/notify"
	"github.com/BruksfildServices01/barberpro/internal/store"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	uc "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

const today = "2026-03-10"

var shop = uc.Shop{
	Name:  "BarberPro",
	Loc:   timezone.Location("America/Sao_Paulo"),
	Clock: timezone.Fixed(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)),
}

// recordingNotifier guarda as mensagens no lugar do despachante real.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (r *recordingNotifier) Dispatch(msg notify.Message) notify.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.Link = notify.Link(msg.Phone, msg.Text, "55")
	r.sent = append(r.sent, msg)
	return msg
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func demoStore(t *testing.T) *store.Store {
	t.Helper()

	seed, err := store.DemoData(today)
	require.NoError(t, err)

	s, err := store.Open(t.Context(), kv.NewMemory(), nil, seed)
	require.NoError(t, err)
	return s
}
