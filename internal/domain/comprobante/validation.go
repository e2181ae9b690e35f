// Package comprobante contiene la validación de dominio de un comprobante SUNAT completo:
// estructura, documentos de emisor y receptor, catálogos y coherencia de totales.
package comprobante

import (
	"errors"
	"fmt"

	"github.com/jhoicas/facturacion-pe/pkg/factura"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ErrFacturaInvalida agrupa errores de validación del comprobante.
var ErrFacturaInvalida = errors.New("comprobante: comprobante inválido")

// ValidateFactura valida el comprobante y devuelve todos los errores unidos con errors.Join
// (el primero siempre es ErrFacturaInvalida), o nil si es válido.
// Una factura (01) exige receptor con RUC. Subtotal, IGV y Total declarados deben
// coincidir con la suma de los ítems.
func ValidateFactura(f *sunat.Factura, v sunat.Validador) error {
	if f == nil {
		return fmt.Errorf("%w: factura nula", ErrFacturaInvalida)
	}
	var errs []error

	for _, msg := range factura.ValidarEstructuraFactura(f) {
		errs = append(errs, errors.New(msg))
	}

	if !f.TipoComprobante.Valido() {
		errs = append(errs, fmt.Errorf("tipo de comprobante %q no válido", f.TipoComprobante))
	}
	if !f.Moneda.Valido() {
		errs = append(errs, fmt.Errorf("moneda %q no válida", f.Moneda))
	}

	// Emisor: siempre contribuyente con RUC.
	if f.Emisor != nil {
		if f.Emisor.TipoDocumento != sunat.TipoDocumentoRUC {
			errs = append(errs, errors.New("emisor: debe identificarse con RUC"))
		} else if !v.RUC(f.Emisor.NumeroDocumento) {
			errs = append(errs, fmt.Errorf("emisor: %s", sunat.MsgRUCInvalido))
		}
		if f.Emisor.Email != "" && !sunat.ValidateEmail(f.Emisor.Email) {
			errs = append(errs, fmt.Errorf("emisor: email %q no válido", f.Emisor.Email))
		}
	}

	if f.Receptor != nil {
		if err := v.Documento(f.Receptor.TipoDocumento, f.Receptor.NumeroDocumento).Err(); err != nil {
			errs = append(errs, fmt.Errorf("receptor: %w", err))
		}
		if f.TipoComprobante == sunat.TipoComprobanteFactura && f.Receptor.TipoDocumento != sunat.TipoDocumentoRUC {
			errs = append(errs, errors.New("receptor: una factura requiere receptor con RUC"))
		}
		if f.Receptor.Email != "" && !sunat.ValidateEmail(f.Receptor.Email) {
			errs = append(errs, fmt.Errorf("receptor: email %q no válido", f.Receptor.Email))
		}
	}

	for i, it := range f.Items {
		if it.TipoAfectacion != "" && !sunat.ValidTipoAfectacionCodes[it.TipoAfectacion] {
			errs = append(errs, fmt.Errorf("ítem %d: tipo de afectación %q no válido", i+1, it.TipoAfectacion))
		}
		if it.ValorTotal.IsNegative() || it.IGV.IsNegative() {
			errs = append(errs, fmt.Errorf("ítem %d: los montos no pueden ser negativos", i+1))
		}
	}

	// Totales coherentes con los ítems.
	if len(f.Items) > 0 {
		tot := factura.CalcularTotalesFactura(f.Items)
		if !f.Subtotal.Equal(tot.Subtotal) {
			errs = append(errs, fmt.Errorf("subtotal (%s) no coincide con la suma de ítems (%s)", f.Subtotal.String(), tot.Subtotal.String()))
		}
		if !f.IGV.Equal(tot.IGV) {
			errs = append(errs, fmt.Errorf("IGV (%s) no coincide con la suma de IGV de ítems (%s)", f.IGV.String(), tot.IGV.String()))
		}
		if !f.Total.Equal(tot.Total) {
			errs = append(errs, fmt.Errorf("total (%s) no coincide con subtotal + IGV (%s)", f.Total.String(), tot.Total.String()))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrFacturaInvalida}, errs...)...)
	}
	return nil
}

// Mensajes separa un error de ValidateFactura en sus mensajes, sin el error de agrupación.
// Acepta el error envuelto por otras capas.
func Mensajes(err error) []string {
	if err == nil {
		return []string{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) > 0 && errs[0] == ErrFacturaInvalida {
			out := make([]string, 0, len(errs)-1)
			for _, e := range errs[1:] {
				out = append(out, e.Error())
			}
			return out
		}
		for _, e := range errs {
			if e != ErrFacturaInvalida && errors.Is(e, ErrFacturaInvalida) {
				return Mensajes(e)
			}
		}
	} else if u := errors.Unwrap(err); u != nil && u != ErrFacturaInvalida && errors.Is(u, ErrFacturaInvalida) {
		return Mensajes(u)
	}
	return []string{err.Error()}
}
