package billing

import (
	"context"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// FacturaPDFGenerator genera la representación impresa de un comprobante ya validado.
// hash es la huella de GenerarHashFactura; qr el contenido del código QR.
type FacturaPDFGenerator interface {
	GenerarPDF(ctx context.Context, f *sunat.Factura, hash, qr string) ([]byte, error)
}
