package formato

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatoDocumento formato de puntuación para FormatDocumento.
type FormatoDocumento string

const (
	FormatoDNI   FormatoDocumento = "DNI"
	FormatoRUC   FormatoDocumento = "RUC"
	FormatoOtros FormatoDocumento = "OTROS"
)

// FormatDate devuelve la fecha como DD/MM/YYYY en la zona horaria de t; "" para la fecha cero.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatDateTime devuelve DD/MM/YYYY HH:mm:ss; "" para la fecha cero.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %02d:%02d:%02d", FormatDate(t), t.Hour(), t.Minute(), t.Second())
}

// CapitalizeWords pasa el texto a minúsculas y pone en mayúscula la primera letra
// de cada palabra separada por espacio ("EMPRESA SAC" → "Empresa Sac").
// Los espacios repetidos se conservan.
func CapitalizeWords(texto string) string {
	if texto == "" {
		return ""
	}
	lower := cases.Lower(language.Spanish)
	upper := cases.Upper(language.Spanish)

	palabras := strings.Split(lower.String(texto), " ")
	for i, p := range palabras {
		if p == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(p)
		palabras[i] = upper.String(p[:size]) + p[size:]
	}
	return strings.Join(palabras, " ")
}

// FormatDocumento quita todo lo que no sea dígito y puntúa según el tipo:
// DNI de 8 dígitos → "1234-5678"; RUC de 11 dígitos → "20-12345678-9".
// Con otra longitud, u otro tipo, devuelve solo los dígitos.
func FormatDocumento(documento string, tipo FormatoDocumento) string {
	if documento == "" {
		return ""
	}
	digits := onlyDigits(documento)

	switch tipo {
	case FormatoDNI:
		if len(digits) == 8 {
			return digits[:4] + "-" + digits[4:]
		}
	case FormatoRUC:
		if len(digits) == 11 {
			return digits[:2] + "-" + digits[2:10] + "-" + digits[10:]
		}
	}
	return digits
}

// onlyDigits deja solo dígitos 0-9.
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
