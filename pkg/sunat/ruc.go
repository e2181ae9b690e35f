package sunat

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos del módulo 11 para el dígito verificador del RUC, aplicados a los 10 primeros dígitos.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidateRUC valida un RUC peruano ("20100070970", "20-10007097-0" o con espacios).
// Exige 11 dígitos, prefijo 10, 15, 17 o 20 y dígito verificador correcto.
// Los RUCs de ejemplo 20123456789 y 10123456789 se aceptan siempre; para
// rechazarlos usar ValidateRUCEstricto.
func ValidateRUC(ruc string) bool {
	limpio, ok := normalizeRUC(ruc)
	if !ok {
		return false
	}
	if rucsDePrueba[limpio] {
		return true
	}
	return checkDigitMatches(limpio)
}

// ValidateRUCEstricto igual que ValidateRUC pero sin excepciones para RUCs de ejemplo.
func ValidateRUCEstricto(ruc string) bool {
	limpio, ok := normalizeRUC(ruc)
	if !ok {
		return false
	}
	return checkDigitMatches(limpio)
}

// ComputeRUCCheckDigit calcula el dígito verificador para los 10 primeros dígitos del RUC.
// Ignora cualquier carácter que no sea dígito.
func ComputeRUCCheckDigit(ruc string) (byte, error) {
	digits := extractDigits(ruc)
	if len(digits) < 10 {
		return 0, fmt.Errorf("sunat: se requieren al menos 10 dígitos para calcular el dígito verificador, se encontraron %d", len(digits))
	}
	return rucCheckDigit(digits[:10]), nil
}

func rucCheckDigit(base string) byte {
	var sum int
	for i := 0; i < 10; i++ {
		sum += int(base[i]-'0') * rucWeights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return byte('0' + remainder)
	}
	return byte('0' + (11 - remainder))
}

func checkDigitMatches(ruc string) bool {
	return rucCheckDigit(ruc) == ruc[10]
}

// normalizeRUC quita espacios y guiones y comprueba longitud, dígitos y prefijo.
func normalizeRUC(ruc string) (string, bool) {
	if ruc == "" {
		return "", false
	}
	limpio := stripSpacesAndHyphens(ruc)
	if len(limpio) != 11 || !isASCIIDigits(limpio) {
		return "", false
	}
	if !prefijosRUC[limpio[:2]] {
		return "", false
	}
	return limpio, true
}

func stripSpacesAndHyphens(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// extractDigits deja solo dígitos 0-9.
func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
