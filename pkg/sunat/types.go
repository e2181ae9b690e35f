package sunat

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoDocumento código de documento de identidad (Catálogo 06 SUNAT).
type TipoDocumento string

// TipoComprobante código de tipo de comprobante de pago (Catálogo 01 SUNAT).
type TipoComprobante string

// TipoMoneda código ISO 4217 de la moneda del comprobante.
type TipoMoneda string

// Entidad datos básicos de una persona o empresa (emisor o receptor).
type Entidad struct {
	TipoDocumento   TipoDocumento `json:"tipo_documento"`
	NumeroDocumento string        `json:"numero_documento"`
	RazonSocial     string        `json:"razon_social"`
	Direccion       string        `json:"direccion,omitempty"`
	Email           string        `json:"email,omitempty"`
	Telefono        string        `json:"telefono,omitempty"`
}

// Item línea de detalle de un comprobante.
// ValorTotal e IGV los informa quien llama; no se derivan de Cantidad y ValorUnitario.
type Item struct {
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	UnidadMedida   string          `json:"unidad_medida"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	IGV            decimal.Decimal `json:"igv"`
	TipoAfectacion string          `json:"tipo_afectacion"`
}

// Factura cabecera y detalle de un comprobante electrónico.
// La estructura admite datos incompletos; ver factura.ValidarEstructuraFactura.
type Factura struct {
	Serie           string          `json:"serie"`
	Numero          string          `json:"numero"`
	TipoComprobante TipoComprobante `json:"tipo_comprobante"`
	Moneda          TipoMoneda      `json:"moneda"`
	FechaEmision    time.Time       `json:"fecha_emision"`
	Emisor          *Entidad        `json:"emisor,omitempty"`
	Receptor        *Entidad        `json:"receptor,omitempty"`
	Items           []Item          `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	IGV             decimal.Decimal `json:"igv"`
	Total           decimal.Decimal `json:"total"`
	Observaciones   string          `json:"observaciones,omitempty"`
}

// NumeroCompleto devuelve "SERIE-NUMERO" (ej: F001-00000001).
func (f *Factura) NumeroCompleto() string {
	return f.Serie + "-" + f.Numero
}
