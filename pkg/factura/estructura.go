package factura

import (
	"strings"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// Mensajes de ValidarEstructuraFactura, en el orden en que se comprueban.
const (
	MsgSerieRequerida    = "Serie es requerida"
	MsgNumeroRequerido   = "Número es requerido"
	MsgEmisorRequerido   = "Datos del emisor son requeridos"
	MsgReceptorRequerido = "Datos del receptor son requeridos"
	MsgItemsRequeridos   = "Al menos un item es requerido"
	MsgFechaRequerida    = "Fecha de emisión válida es requerida"
)

// ValidarEstructuraFactura comprueba que la factura tenga serie, número, emisor,
// receptor, al menos un ítem y fecha de emisión. Todas las comprobaciones se
// ejecutan; el slice sale vacío si la estructura está completa.
// Una factura nil falla todas las comprobaciones.
func ValidarEstructuraFactura(f *sunat.Factura) []string {
	if f == nil {
		f = &sunat.Factura{}
	}
	errores := []string{}

	if strings.TrimSpace(f.Serie) == "" {
		errores = append(errores, MsgSerieRequerida)
	}
	if strings.TrimSpace(f.Numero) == "" {
		errores = append(errores, MsgNumeroRequerido)
	}
	if f.Emisor == nil {
		errores = append(errores, MsgEmisorRequerido)
	}
	if f.Receptor == nil {
		errores = append(errores, MsgReceptorRequerido)
	}
	if len(f.Items) == 0 {
		errores = append(errores, MsgItemsRequeridos)
	}
	if f.FechaEmision.IsZero() {
		errores = append(errores, MsgFechaRequerida)
	}
	return errores
}
