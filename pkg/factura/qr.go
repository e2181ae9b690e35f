package factura

import (
	"fmt"
	"strings"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// CadenaQR arma el contenido del código QR de la representación impresa:
// RUC|TIPO|SERIE|NUMERO|IGV|TOTAL|FECHA|TIPO DOC ADQ|NUM DOC ADQ|
// Montos con punto decimal y 2 decimales; fecha YYYY-MM-DD.
func CadenaQR(f *sunat.Factura) (string, error) {
	if f == nil {
		return "", fmt.Errorf("%w: factura nula", ErrFacturaIncompleta)
	}
	if f.Emisor == nil || f.Receptor == nil {
		return "", fmt.Errorf("%w: emisor y receptor son obligatorios para el QR", ErrFacturaIncompleta)
	}
	if f.FechaEmision.IsZero() {
		return "", fmt.Errorf("%w: fecha de emisión es obligatoria para el QR", ErrFacturaIncompleta)
	}

	campos := []string{
		f.Emisor.NumeroDocumento,
		string(f.TipoComprobante),
		f.Serie,
		f.Numero,
		f.IGV.StringFixed(2),
		f.Total.StringFixed(2),
		f.FechaEmision.Format("2006-01-02"),
		string(f.Receptor.TipoDocumento),
		f.Receptor.NumeroDocumento,
	}
	return strings.Join(campos, "|") + "|", nil
}
