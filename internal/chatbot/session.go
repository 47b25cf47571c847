package chatbot

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrSessionClosed = errors.New("chat session closed")

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Entry struct {
	Sender  Sender    `json:"sender"`
	Text    string    `json:"text"`
	Options []string  `json:"options,omitempty"`
	At      time.Time `json:"at"`
}

type job struct {
	text  string
	at    time.Time
	reply chan Reply
}

// Session é uma conversa com uma fila própria: cada entrada espera o atraso
// de "digitando" e é processada na ordem de chegada, uma de cada vez.
type Session struct {
	ID string

	conv  *Conversation
	delay time.Duration
	log   *zap.Logger

	mu         sync.Mutex
	transcript []Entry
	closed     bool
	lastActive time.Time

	queue chan job
	stop  chan struct{}
	done  chan struct{}
}

func newSession(id string, conv *Conversation, delay time.Duration, log *zap.Logger) *Session {
	s := &Session{
		ID:    id,
		conv:  conv,
		delay: delay,
		log:   log,
		queue: make(chan job, 32),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	greeting := conv.Greeting()
	s.lastActive = time.Now()
	s.transcript = append(s.transcript, Entry{Sender: SenderBot, Text: greeting.Text, At: s.lastActive})

	go s.worker()
	return s
}

func (s *Session) worker() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case j := <-s.queue:
			// A fala do usuário só entra no histórico quando sai da fila,
			// antes da resposta correspondente.
			s.mu.Lock()
			s.transcript = append(s.transcript, Entry{Sender: SenderUser, Text: j.text, At: j.at})
			s.mu.Unlock()

			if s.delay > 0 {
				t := time.NewTimer(s.delay)
				select {
				case <-t.C:
				case <-s.stop:
					t.Stop()
					return
				}
			}

			s.mu.Lock()
			r := s.conv.Handle(context.Background(), j.text)
			s.lastActive = time.Now()
			s.transcript = append(s.transcript, Entry{Sender: SenderBot, Text: r.Text, Options: r.Options, At: s.lastActive})
			step := s.conv.Step()
			s.mu.Unlock()

			s.log.Debug("bot reply", zap.String("session", s.ID), zap.String("step", string(step)))
			j.reply <- r
		}
	}
}

// Post enfileira a mensagem sem esperar a resposta, que chega pelo canal.
// Mensagem que não entrou na fila não aparece no histórico.
func (s *Session) Post(ctx context.Context, text string) (<-chan Reply, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.mu.Unlock()

	j := job{text: text, at: time.Now(), reply: make(chan Reply, 1)}

	select {
	case s.queue <- j:
		s.mu.Lock()
		s.lastActive = j.at
		s.mu.Unlock()
		return j.reply, nil
	case <-s.stop:
		return nil, ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Send enfileira a mensagem e espera a resposta. Se ctx acabar antes, a
// mensagem continua na fila e será processada mesmo assim.
func (s *Session) Send(ctx context.Context, text string) (Reply, error) {
	reply, err := s.Post(ctx, text)
	if err != nil {
		return Reply{}, err
	}

	select {
	case r := <-reply:
		return r, nil
	case <-s.stop:
		return Reply{}, ErrSessionClosed
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}

func (s *Session) Transcript() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// LastActive é o instante da última mensagem aceita ou respondida.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastActive
}

// State devolve o passo e o rascunho atuais.
func (s *Session) State() (Step, Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conv.Step(), s.conv.Draft()
}

func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}
