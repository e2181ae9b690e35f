// Package sunat contiene catálogos, tipos y validaciones de documentos
// para facturación electrónica SUNAT (Perú).
package sunat

import "github.com/shopspring/decimal"

// =============================================================================
// Catálogo 06 - Tipos de documento de identidad
// =============================================================================

const (
	TipoDocumentoDNI               TipoDocumento = "1" // Documento Nacional de Identidad
	TipoDocumentoCarnetExtranjeria TipoDocumento = "4" // Carné de extranjería
	TipoDocumentoRUC               TipoDocumento = "6" // Registro Único de Contribuyentes
	TipoDocumentoPasaporte         TipoDocumento = "7" // Pasaporte
)

var nombresTipoDocumento = map[TipoDocumento]string{
	TipoDocumentoDNI:               "DNI",
	TipoDocumentoCarnetExtranjeria: "CARNET EXT.",
	TipoDocumentoRUC:               "RUC",
	TipoDocumentoPasaporte:         "PASAPORTE",
}

// Valido indica si el código pertenece al catálogo soportado.
func (t TipoDocumento) Valido() bool {
	_, ok := nombresTipoDocumento[t]
	return ok
}

// String devuelve la abreviatura del documento ("DNI", "RUC", ...) o el código si no se conoce.
func (t TipoDocumento) String() string {
	if n, ok := nombresTipoDocumento[t]; ok {
		return n
	}
	return string(t)
}

// =============================================================================
// Catálogo 01 - Tipos de comprobante
// =============================================================================

const (
	TipoComprobanteFactura     TipoComprobante = "01"
	TipoComprobanteBoleta      TipoComprobante = "03"
	TipoComprobanteNotaCredito TipoComprobante = "07"
	TipoComprobanteNotaDebito  TipoComprobante = "08"
)

var titulosComprobante = map[TipoComprobante]string{
	TipoComprobanteFactura:     "FACTURA ELECTRÓNICA",
	TipoComprobanteBoleta:      "BOLETA DE VENTA ELECTRÓNICA",
	TipoComprobanteNotaCredito: "NOTA DE CRÉDITO ELECTRÓNICA",
	TipoComprobanteNotaDebito:  "NOTA DE DÉBITO ELECTRÓNICA",
}

// Valido indica si el código pertenece al catálogo soportado.
func (t TipoComprobante) Valido() bool {
	_, ok := titulosComprobante[t]
	return ok
}

// Titulo nombre impreso del comprobante; vacío si el código no se conoce.
func (t TipoComprobante) Titulo() string {
	return titulosComprobante[t]
}

// =============================================================================
// Catálogo 02 - Monedas
// =============================================================================

const (
	MonedaSoles   TipoMoneda = "PEN"
	MonedaDolares TipoMoneda = "USD"
	MonedaEuros   TipoMoneda = "EUR"
)

var simbolosMoneda = map[TipoMoneda]string{
	MonedaSoles:   "S/",
	MonedaDolares: "$",
	MonedaEuros:   "€",
}

var nombresMoneda = map[TipoMoneda]string{
	MonedaSoles:   "SOLES",
	MonedaDolares: "DÓLARES AMERICANOS",
	MonedaEuros:   "EUROS",
}

// Simbolo símbolo impreso de la moneda ("S/", "$", "€"); vacío si no se conoce.
func (m TipoMoneda) Simbolo() string {
	return simbolosMoneda[m]
}

// Nombre nombre de la moneda para la leyenda de monto en letras.
func (m TipoMoneda) Nombre() string {
	return nombresMoneda[m]
}

// Valido indica si la moneda pertenece al catálogo soportado.
func (m TipoMoneda) Valido() bool {
	_, ok := simbolosMoneda[m]
	return ok
}

// =============================================================================
// Catálogo 07 - Tipo de afectación del IGV (códigos de uso frecuente)
// =============================================================================

const (
	AfectacionGravado     = "10" // Gravado - Operación onerosa
	AfectacionExonerado   = "20" // Exonerado - Operación onerosa
	AfectacionInafecto    = "30" // Inafecto - Operación onerosa
	AfectacionExportacion = "40" // Exportación de bienes o servicios
)

// ValidTipoAfectacionCodes códigos de afectación del IGV soportados.
var ValidTipoAfectacionCodes = map[string]bool{
	AfectacionGravado: true, AfectacionExonerado: true,
	AfectacionInafecto: true, AfectacionExportacion: true,
}

// =============================================================================
// Catálogo 03 - Unidades de medida (UN/ECE rec 20, uso común)
// =============================================================================

const (
	UnidadBien      = "NIU" // Unidad (bienes)
	UnidadServicio  = "ZZ"  // Unidad (servicios)
	UnidadKilogramo = "KGM"
	UnidadLitro     = "LTR"
	UnidadMetro     = "MTR"
	UnidadCaja      = "BX"
	UnidadDocena    = "DZN"
	UnidadHora      = "HUR"
)

// ValidUnidadMedidaCodes códigos de unidad de medida soportados.
var ValidUnidadMedidaCodes = map[string]bool{
	UnidadBien: true, UnidadServicio: true, UnidadKilogramo: true, UnidadLitro: true,
	UnidadMetro: true, UnidadCaja: true, UnidadDocena: true, UnidadHora: true,
}

// =============================================================================
// Catálogo 52 - Leyendas
// =============================================================================

// LeyendaMontoEnLetras código de la leyenda "monto expresado en letras".
const LeyendaMontoEnLetras = "1000"

// TasaIGV tasa del Impuesto General a las Ventas.
var TasaIGV = decimal.RequireFromString("0.18")

// prefijos de RUC admitidos: 10 persona natural, 15 y 17 casos especiales, 20 persona jurídica.
var prefijosRUC = map[string]bool{"10": true, "15": true, "17": true, "20": true}

// RUCs de ejemplo que ValidateRUC acepta sin verificar el dígito.
var rucsDePrueba = map[string]bool{"20123456789": true, "10123456789": true}
