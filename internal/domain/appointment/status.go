package appointment

import "github.com/BruksfildServices01/barberpro/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var labels = map[Status]string{
	StatusPending:   "Pendente",
	StatusConfirmed: "Confirmado",
	StatusCompleted: "Concluído",
	StatusCancelled: "Cancelado",
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Terminal: concluído e cancelado não saem mais do lugar.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm: só agendamentos pendentes podem ser confirmados
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pendentes e confirmados podem ser cancelados
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só agendamentos confirmados podem ser concluídos
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition valida qualquer transição pedida pelo painel.
func CanTransition(from, to Status) error {
	switch to {
	case StatusConfirmed:
		return CanConfirm(from)
	case StatusCancelled:
		return CanCancel(from)
	case StatusCompleted:
		return CanComplete(from)
	default:
		return httperr.ErrBusiness("invalid_state")
	}
}

// InitialStatus: o formulário cria pendente; o bot é autoatendimento e já
// nasce confirmado.
func InitialStatus(channel string) Status {
	if channel == "bot" {
		return StatusConfirmed
	}
	return StatusPending
}
