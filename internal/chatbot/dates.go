package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberpro/internal/timezone"
)

var dateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)

// ParseDate entende "hoje", "amanhã"/"amanha", D/M e D/M/AAAA relativos a
// today. Dia e mês só são checados contra 1-31 e 1-12: 31/02 vira o início
// de março, como time.Date normaliza.
func ParseDate(input string, today time.Time) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))

	switch lower {
	case "hoje":
		return today.Format(timezone.DateLayout), true
	case "amanhã", "amanha":
		return today.AddDate(0, 0, 1).Format(timezone.DateLayout), true
	}

	m := dateRe.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := today.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
	return d.Format(timezone.DateLayout), true
}

var timeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseTime aceita H:MM ou HH:MM em 24h e devolve HH:MM.
func ParseTime(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if !timeRe.MatchString(s) {
		return "", false
	}
	if len(s) == 4 {
		s = "0" + s
	}
	return s, true
}
