package factura

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ErrFacturaIncompleta falta un dato obligatorio para el cálculo.
var ErrFacturaIncompleta = errors.New("factura: datos incompletos")

// GenerarHashFactura huella corta de la factura para distinguirla en listados y en la
// representación impresa. No es criptográfica ni reemplaza la firma digital.
//
// Cadena: Serie + Numero + Emisor.NumeroDocumento + FechaEmision en milisegundos Unix.
// Hash: h = h*31 + c sobre las unidades UTF-16 de la cadena, con desborde a 32 bits;
// salida: valor absoluto en hexadecimal mayúsculas.
func GenerarHashFactura(f *sunat.Factura) (string, error) {
	if f == nil {
		return "", fmt.Errorf("%w: factura nula", ErrFacturaIncompleta)
	}
	if f.Emisor == nil {
		return "", fmt.Errorf("%w: emisor es obligatorio para el hash", ErrFacturaIncompleta)
	}

	cadena := f.Serie +
		f.Numero +
		f.Emisor.NumeroDocumento +
		strconv.FormatInt(f.FechaEmision.UnixMilli(), 10)

	var h int32
	for _, c := range utf16.Encode([]rune(cadena)) {
		h = h*31 + int32(c)
	}

	// |math.MinInt32| no cabe en int32.
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strings.ToUpper(strconv.FormatInt(abs, 16)), nil
}
