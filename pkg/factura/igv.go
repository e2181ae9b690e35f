// Package factura reúne los cálculos sobre comprobantes SUNAT: IGV, totales,
// correlativos, monto en letras, validación de estructura y huella de la factura.
package factura

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

var unoMasIGV = decimal.NewFromInt(1).Add(sunat.TasaIGV)

// Totales subtotal, IGV y total de un comprobante, redondeados a 2 decimales.
type Totales struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	IGV      decimal.Decimal `json:"igv"`
	Total    decimal.Decimal `json:"total"`
}

// IGV calcula el 18% de la base imponible, redondeado a 2 decimales. Base negativa → 0.
func IGV(base decimal.Decimal) decimal.Decimal {
	if base.IsNegative() {
		return decimal.Zero
	}
	return base.Mul(sunat.TasaIGV).Round(2)
}

// BaseImponible obtiene el monto sin IGV a partir de un monto con IGV (÷ 1.18), a 2 decimales.
func BaseImponible(montoConIGV decimal.Decimal) decimal.Decimal {
	if montoConIGV.IsNegative() {
		return decimal.Zero
	}
	return montoConIGV.Div(unoMasIGV).Round(2)
}

// CalcularIGV versión float64 de IGV; NaN, infinitos y negativos devuelven 0.
func CalcularIGV(monto float64) float64 {
	if !finitoNoNegativo(monto) {
		return 0
	}
	return IGV(decimal.NewFromFloat(monto)).InexactFloat64()
}

// CalcularMontoSinIGV versión float64 de BaseImponible; NaN, infinitos y negativos devuelven 0.
// No es la inversa exacta de CalcularIGV: ambos redondean a 2 decimales.
func CalcularMontoSinIGV(montoConIGV float64) float64 {
	if !finitoNoNegativo(montoConIGV) {
		return 0
	}
	return BaseImponible(decimal.NewFromFloat(montoConIGV)).InexactFloat64()
}

// CalcularTotalesFactura suma ValorTotal e IGV de los ítems; Total = Subtotal + IGV.
// El redondeo a 2 decimales se aplica después de sumar, no por ítem.
func CalcularTotalesFactura(items []sunat.Item) Totales {
	var subtotal, igv decimal.Decimal
	for _, it := range items {
		subtotal = subtotal.Add(it.ValorTotal)
		igv = igv.Add(it.IGV)
	}
	return Totales{
		Subtotal: subtotal.Round(2),
		IGV:      igv.Round(2),
		Total:    subtotal.Add(igv).Round(2),
	}
}

func finitoNoNegativo(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
