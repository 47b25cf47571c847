package chatbot

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrTooManySessions = errors.New("too many open chat sessions")

type RegistryOption func(*Registry)

// WithIdleTimeout fecha sessões sem mensagens há mais de idle. Zero desliga.
func WithIdleTimeout(idle time.Duration) RegistryOption {
	return func(r *Registry) { r.idle = idle }
}

// WithMaxSessions limita as sessões abertas ao mesmo tempo. Zero = sem limite.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) { r.maxSessions = n }
}

// Registry guarda as sessões abertas de chat, uma conversa por id.
type Registry struct {
	catalog Catalog
	booker  Booker
	cfg     Config
	delay   time.Duration
	log     *zap.Logger

	idle        time.Duration
	maxSessions int

	mu       sync.Mutex
	sessions map[string]*Session

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewRegistry(catalog Catalog, booker Booker, cfg Config, delay time.Duration, opts ...RegistryOption) *Registry {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &Registry{
		catalog:  catalog,
		booker:   booker,
		cfg:      cfg,
		delay:    delay,
		log:      log,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.idle > 0 {
		go r.reaper()
	} else {
		close(r.done)
	}
	return r
}

func (r *Registry) reaper() {
	defer close(r.done)

	t := time.NewTicker(max(r.idle/2, 10*time.Millisecond))
	defer t.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-t.C:
			if n := r.CloseIdle(now); n > 0 {
				r.log.Info("idle chat sessions closed", zap.Int("count", n))
			}
		}
	}
}

// Open cria uma sessão nova com a saudação já no histórico.
func (r *Registry) Open() (*Session, error) {
	r.mu.Lock()
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.mu.Unlock()
		return nil, ErrTooManySessions
	}

	id := uuid.NewString()
	s := newSession(id, NewConversation(r.catalog, r.booker, r.cfg), r.delay, r.log)
	r.sessions[id] = s
	r.mu.Unlock()

	r.log.Info("chat session opened", zap.String("session", id))
	return s, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// CloseIdle encerra as sessões cuja última atividade é anterior a now-idle
// e devolve quantas foram fechadas.
func (r *Registry) CloseIdle(now time.Time) int {
	if r.idle <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idle)

	var idle []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.LastActive().Before(cutoff) {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// Shutdown para o reaper e encerra todas as sessões.
func (r *Registry) Shutdown() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done

	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}
