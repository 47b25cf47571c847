package timezone

import (
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Sao_Paulo"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock devolve o instante atual; injetado para permitir testes determinísticos.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// Fixed devolve um Clock parado em t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Today devolve o dia corrente (YYYY-MM-DD) no fuso da barbearia.
func Today(clock Clock, loc *time.Location) string {
	return clock().In(loc).Format(DateLayout)
}

func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// FormatBR converte YYYY-MM-DD para DD/MM/YYYY; entradas inválidas voltam intactas.
func FormatBR(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
