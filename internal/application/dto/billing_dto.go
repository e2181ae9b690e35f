package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ValidarDocumentoRequest body para POST /api/documentos/validar.
type ValidarDocumentoRequest struct {
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
}

// FormatearMontoRequest body para POST /api/montos/formatear.
// Los campos de formato son opcionales; los ausentes toman el valor por defecto.
type FormatearMontoRequest struct {
	Monto            float64 `json:"monto"`
	Moneda           string  `json:"moneda,omitempty"`
	Decimales        *int    `json:"decimales,omitempty"`
	SeparadorMiles   *string `json:"separador_miles,omitempty"`
	SeparadorDecimal *string `json:"separador_decimal,omitempty"`
}

// FormatearMontoResponse monto formateado y su leyenda en letras.
type FormatearMontoResponse struct {
	Formateado string `json:"formateado"`
	EnLetras   string `json:"en_letras"`
}

// ValidarFacturaResponse resultado de POST /api/facturas/validar.
// Hash, CadenaQR y MontoEnLetras solo se informan si la factura es válida.
type ValidarFacturaResponse struct {
	EsValida       bool            `json:"es_valida"`
	Errores        []string        `json:"errores"`
	NumeroCompleto string          `json:"numero_completo,omitempty"`
	Hash           string          `json:"hash,omitempty"`
	CadenaQR       string          `json:"cadena_qr,omitempty"`
	MontoEnLetras  string          `json:"monto_en_letras,omitempty"`
	Total          decimal.Decimal `json:"total"`
}

// SiguienteNumeroResponse respuesta de GET /api/series/:serie/siguiente.
type SiguienteNumeroResponse struct {
	Serie          string `json:"serie"`
	Ultimo         int    `json:"ultimo"`
	NumeroCompleto string `json:"numero_completo"`
}

// TotalesRequest body para POST /api/facturas/totales.
type TotalesRequest struct {
	Items []sunat.Item `json:"items"`
}
