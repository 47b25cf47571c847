package chatbot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberpro/internal/chatbot"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, saoPaulo)

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"hoje", "2026-03-10", true},
		{" HOJE ", "2026-03-10", true},
		{"amanhã", "2026-03-11", true},
		{"Amanha", "2026-03-11", true},
		{"15/08", "2026-08-15", true},
		{"5/8", "2026-08-05", true},
		{"25/12/2027", "2027-12-25", true},
		// sem checagem de dias do mês: transborda para março
		{"31/02", "2026-03-03", true},
		{"31/04", "2026-05-01", true},
		{"0/5", "", false},
		{"32/5", "", false},
		{"10/0", "", false},
		{"10/13", "", false},
		{"10/5/26", "", false},
		{"ontem", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := chatbot.ParseDate(tt.in, now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	for in, want := range map[string]string{"9:00": "09:00", "09:05": "09:05", "23:59": "23:59", "0:00": "00:00"} {
		got, ok := chatbot.ParseTime(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	for _, in := range []string{"24:00", "9:5", "09:60", "9h", "", "123:00"} {
		_, ok := chatbot.ParseTime(in)
		assert.False(t, ok, in)
	}
}
