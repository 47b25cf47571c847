// Package notify formats customer messages and hands WhatsApp deep links to a
// fire-and-forget sink.
package notify

import (
	"net/url"
	"strings"
	"unicode"
)

const DefaultCountryCode = "55"

// Digits mantém só os dígitos do telefone.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone aplica o DDI padrão a números locais de 10 ou 11 dígitos.
// Números com menos de 10 dígitos são considerados ausentes.
func NormalizePhone(phone, countryCode string) string {
	d := Digits(phone)
	if len(d) < 10 {
		return ""
	}
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	if len(d) <= 11 {
		return countryCode + d
	}
	return d
}

// componentEscaper desfaz o que QueryEscape codifica a mais que
// encodeURIComponent. "+" literal já saiu como %2B, então "+" aqui é espaço.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeText codifica como encodeURIComponent: espaço vira %20 e !'()*
// ficam como estão.
func EscapeText(text string) string {
	return componentEscaper.Replace(url.QueryEscape(text))
}

// Link monta https://wa.me/<telefone>?text=<texto>. Sem telefone válido o
// link abre o seletor de contatos do WhatsApp.
func Link(phone, text, countryCode string) string {
	return "https://wa.me/" + NormalizePhone(phone, countryCode) + "?text=" + EscapeText(text)
}
