package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Message é uma notificação pronta para sair.
type Message struct {
	Kind          Kind   `json:"kind"`
	AppointmentID string `json:"appointment_id,omitempty"`
	ClientID      string `json:"client_id,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Text          string `json:"text"`
	Link          string `json:"link"`
}

// Sink entrega a mensagem. Não há confirmação de entrega.
type Sink interface {
	Deliver(ctx context.Context, msg Message) error
}

// LogSink registra o link no log; o operador abre o link manualmente.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, msg Message) error {
	s.log.Info("whatsapp message",
		zap.String("kind", string(msg.Kind)),
		zap.String("appointment_id", msg.AppointmentID),
		zap.String("link", msg.Link),
	)
	return nil
}

// Dispatcher monta o link e entrega em segundo plano, no mesmo molde do
// trilho de auditoria: fila com buffer e um worker.
type Dispatcher struct {
	sink        Sink
	log         *zap.Logger
	countryCode string
	queue       chan Message

	once sync.Once
	done chan struct{}
}

func NewDispatcher(sink Sink, countryCode string, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		sink:        sink,
		log:         log,
		countryCode: countryCode,
		queue:       make(chan Message, 100),
		done:        make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for msg := range d.queue {
		if err := d.sink.Deliver(context.Background(), msg); err != nil {
			d.log.Error("notification error", zap.String("kind", string(msg.Kind)), zap.Error(err))
		}
	}
}

// Dispatch preenche Link e enfileira. Devolve a mensagem completa para quem
// quiser mostrar o link na hora.
func (d *Dispatcher) Dispatch(msg Message) Message {
	msg.Link = Link(msg.Phone, msg.Text, d.countryCode)

	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notification queue full, dropping message", zap.String("kind", string(msg.Kind)))
	}
	return msg
}

// Close entrega o que resta na fila. Não chame Dispatch depois de Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
