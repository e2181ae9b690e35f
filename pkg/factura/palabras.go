package factura

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// MontoDemasiadoGrande texto para montos de un millón o más.
const MontoDemasiadoGrande = "MONTO DEMASIADO GRANDE"

var (
	unidades = [10]string{"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	decenas  = [10]string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	// 10 a 19
	especiales = [10]string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	centenas   = [10]string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// NumeroEnPalabras expresa la parte entera de n en palabras (mayúsculas), de 0 a 999.999.
// Negativos, NaN e infinitos devuelven ""; desde 1.000.000 devuelve MontoDemasiadoGrande.
//
//	NumeroEnPalabras(21)   // "VEINTE Y UNO"
//	NumeroEnPalabras(1001) // "MIL UNO"
func NumeroEnPalabras(n float64) string {
	if n == 0 {
		return "CERO"
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return ""
	}

	enteros := math.Floor(n)
	if enteros >= 1_000_000 {
		return MontoDemasiadoGrande
	}
	num := int(enteros)
	if num < 1000 {
		return grupoEnPalabras(num)
	}

	miles, resto := num/1000, num%1000
	res := "MIL"
	if miles > 1 {
		res = grupoEnPalabras(miles) + " MIL"
	}
	if resto > 0 {
		res += " " + grupoEnPalabras(resto)
	}
	return res
}

// grupoEnPalabras convierte 0..999; 0 devuelve "".
func grupoEnPalabras(num int) string {
	if num == 0 {
		return ""
	}
	if num == 100 {
		return "CIEN"
	}

	c, d, u := num/100, (num%100)/10, num%10
	res := centenas[c]

	if d == 1 {
		return juntar(res, " ", especiales[u])
	}
	if d > 0 {
		res = juntar(res, " ", decenas[d])
	}
	if u > 0 {
		res = juntar(res, " Y ", unidades[u])
	}
	return res
}

// juntar agrega palabra a res con sep, o solo palabra si res está vacío.
func juntar(res, sep, palabra string) string {
	if res == "" {
		return palabra
	}
	return res + sep + palabra
}

// MontoEnLetras leyenda de monto en letras para el comprobante (leyenda 1000):
// 118.50 PEN → "CIENTO DIECIOCHO CON 50/100 SOLES".
// Un monto negativo se expresa por su valor absoluto.
func MontoEnLetras(monto decimal.Decimal, moneda sunat.TipoMoneda) string {
	m := monto.Abs().Round(2)
	enteros := m.Truncate(0)
	centimos := m.Sub(enteros).Shift(2).IntPart()

	texto := fmt.Sprintf("%s CON %02d/100", NumeroEnPalabras(enteros.InexactFloat64()), centimos)
	if nombre := moneda.Nombre(); nombre != "" {
		texto += " " + nombre
	}
	return texto
}
