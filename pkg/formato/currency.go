// Package formato da formato de impresión a montos, fechas, textos y números de documento.
package formato

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ConfiguracionFormato parámetros de formato de montos.
type ConfiguracionFormato struct {
	Decimales        int
	SeparadorMiles   string
	SeparadorDecimal string
	SimboloMoneda    string
}

// ConfiguracionDefault 2 decimales, coma de miles, punto decimal, sin símbolo.
var ConfiguracionDefault = ConfiguracionFormato{
	Decimales:        2,
	SeparadorMiles:   ",",
	SeparadorDecimal: ".",
	SimboloMoneda:    "",
}

// MaxDecimales tope de decimales que acepta el formato; valores mayores se recortan.
const MaxDecimales = 10

// Opcion sobrescribe un campo de ConfiguracionDefault.
type Opcion func(*ConfiguracionFormato)

// ConDecimales cantidad de decimales; valores negativos equivalen a 0 y los mayores a MaxDecimales se recortan.
func ConDecimales(n int) Opcion {
	return func(c *ConfiguracionFormato) { c.Decimales = n }
}

// ConSeparadorMiles separador de miles.
func ConSeparadorMiles(sep string) Opcion {
	return func(c *ConfiguracionFormato) { c.SeparadorMiles = sep }
}

// ConSeparadorDecimal separador decimal.
func ConSeparadorDecimal(sep string) Opcion {
	return func(c *ConfiguracionFormato) { c.SeparadorDecimal = sep }
}

// ConSimbolo símbolo de moneda antepuesto con un espacio ("S/ 100.00").
func ConSimbolo(simbolo string) Opcion {
	return func(c *ConfiguracionFormato) { c.SimboloMoneda = simbolo }
}

// ConConfiguracion reemplaza la configuración completa.
func ConConfiguracion(cfg ConfiguracionFormato) Opcion {
	return func(c *ConfiguracionFormato) { *c = cfg }
}

func configuracion(opts []Opcion) ConfiguracionFormato {
	cfg := ConfiguracionDefault
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Decimales < 0 {
		cfg.Decimales = 0
	}
	if cfg.Decimales > MaxDecimales {
		cfg.Decimales = MaxDecimales
	}
	return cfg
}

// FormatCurrency formatea un monto. NaN e infinitos devuelven "0.00" sin importar la configuración.
//
//	FormatCurrency(1234.56)                      // "1,234.56"
//	FormatCurrency(1234.567, ConDecimales(3),
//	    ConSeparadorMiles("."), ConSeparadorDecimal(","),
//	    ConSimbolo("S/"))                        // "S/ 1.234,567"
func FormatCurrency(monto float64, opts ...Opcion) string {
	if math.IsNaN(monto) || math.IsInf(monto, 0) {
		return "0.00"
	}
	return FormatDecimal(decimal.NewFromFloat(monto), opts...)
}

// FormatDecimal igual que FormatCurrency para montos decimal.Decimal.
func FormatDecimal(monto decimal.Decimal, opts ...Opcion) string {
	cfg := configuracion(opts)
	places := int32(cfg.Decimales)

	fixed := monto.Round(places).StringFixed(places)
	enteros, decimales, _ := strings.Cut(fixed, ".")

	signo := ""
	if strings.HasPrefix(enteros, "-") {
		signo, enteros = "-", enteros[1:]
	}

	res := signo + groupThousands(enteros, cfg.SeparadorMiles)
	if cfg.Decimales > 0 {
		res += cfg.SeparadorDecimal + decimales
	}
	if cfg.SimboloMoneda != "" {
		return cfg.SimboloMoneda + " " + res
	}
	return res
}

// FormatCurrencyByType formatea con el símbolo de la moneda (PEN "S/", USD "$", EUR "€").
func FormatCurrencyByType(monto float64, moneda sunat.TipoMoneda) string {
	return FormatCurrency(monto, ConSimbolo(moneda.Simbolo()))
}

// FormatDecimalByType igual que FormatCurrencyByType para montos decimal.Decimal.
func FormatDecimalByType(monto decimal.Decimal, moneda sunat.TipoMoneda) string {
	return FormatDecimal(monto, ConSimbolo(moneda.Simbolo()))
}

// groupThousands inserta sep cada tres dígitos desde la derecha.
// Ej: "1234567" → "1,234,567"; "999" → "999".
func groupThousands(s, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + (n/3)*len(sep))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
