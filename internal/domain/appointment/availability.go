package appointment

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/models"
)

var (
	ErrEmptyCatalogue    = errors.New("slot catalogue is empty")
	ErrUnsortedCatalogue = errors.New("slot catalogue must be sorted ascending without duplicates")
	ErrInvalidDate       = errors.New("invalid calendar date")
)

// Catalogue é a lista ordenada de horários (HH:MM) de expediente.
type Catalogue []string

func NewCatalogue(slots []string) (Catalogue, error) {
	if len(slots) == 0 {
		return nil, ErrEmptyCatalogue
	}

	out := make(Catalogue, 0, len(slots))
	for _, s := range slots {
		t, ok := NormalizeTime(s)
		if !ok {
			return nil, fmt.Errorf("invalid slot %q", s)
		}
		out = append(out, t)
	}

	for i := 1; i < len(out); i++ {
		if out[i] <= out[i-1] {
			return nil, ErrUnsortedCatalogue
		}
	}
	return out, nil
}

// MustCatalogue é para catálogos fixos no código.
func MustCatalogue(slots ...string) Catalogue {
	c, err := NewCatalogue(slots)
	if err != nil {
		panic(err)
	}
	return c
}

// StepCatalogue gera horários de startHour:00 até endHour:00 (inclusive) a
// cada stepMinutes.
func StepCatalogue(startHour, endHour, stepMinutes int) Catalogue {
	if stepMinutes <= 0 || endHour < startHour {
		return nil
	}

	var out Catalogue
	for m := startHour * 60; m <= endHour*60; m += stepMinutes {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}

// Catálogos padrão: grade do formulário, bot (sem 12:00, almoço) e
// compartilhamento de horários livres.
var (
	FormCatalogue  = StepCatalogue(9, 19, 30)
	BotCatalogue   = MustCatalogue("09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00")
	ShareCatalogue = StepCatalogue(9, 19, 60)
)

func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// Occupies diz se ap ocupa um horário na visão (date, barberID).
//
// Sem filtro de profissional, qualquer agendamento ativo do dia ocupa. Com
// filtro, só os daquele profissional ocupam: reservas "qualquer profissional"
// não bloqueiam a visão de um barbeiro específico.
func Occupies(ap models.Appointment, date, barberID string) bool {
	if ap.Date != date || Status(ap.Status) == StatusCancelled {
		return false
	}
	if barberID == "" {
		return true
	}
	return ap.BarberID == barberID
}

// FreeSlots devolve os horários do catálogo não ocupados em date, na ordem
// do catálogo. Resultado vazio é um slice vazio não-nil.
func FreeSlots(
	catalogue Catalogue,
	date string,
	barberID string,
	appointments []models.Appointment,
) ([]string, error) {

	if len(catalogue) == 0 {
		return nil, ErrEmptyCatalogue
	}
	if !sort.StringsAreSorted(catalogue) {
		return nil, ErrUnsortedCatalogue
	}
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}

	busy := make(map[string]struct{})
	for _, ap := range appointments {
		if Occupies(ap, date, barberID) {
			busy[ap.Time] = struct{}{}
		}
	}

	free := make([]string, 0, len(catalogue))
	for _, slot := range catalogue {
		if _, taken := busy[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free, nil
}

// NormalizeTime aceita H:MM ou HH:MM (00-23, 00-59) e devolve HH:MM.
func NormalizeTime(s string) (string, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", false
	}
	return t.Format("15:04"), true
}
