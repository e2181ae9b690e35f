package factura

import (
	"strconv"
	"strings"
)

// longitud del correlativo impreso.
const anchoCorrelativo = 8

// GenerarNumeroSerie devuelve el siguiente número de la serie: ("F001", 0) → "F001-00000001".
// No controla desbordes: un correlativo de más de 8 dígitos se imprime completo.
func GenerarNumeroSerie(serie string, ultimoNumero int) string {
	siguiente := strconv.Itoa(ultimoNumero + 1)
	if pad := anchoCorrelativo - len(siguiente); pad > 0 {
		siguiente = strings.Repeat("0", pad) + siguiente
	}
	return serie + "-" + siguiente
}
