package billing

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pe/internal/application/dto"
	"github.com/jhoicas/facturacion-pe/internal/domain"
	"github.com/jhoicas/facturacion-pe/internal/domain/comprobante"
	"github.com/jhoicas/facturacion-pe/pkg/factura"
	"github.com/jhoicas/facturacion-pe/pkg/formato"
	"github.com/jhoicas/facturacion-pe/pkg/logger"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// seriePattern serie de 4 caracteres alfanuméricos (F001, B001, FC01...).
var seriePattern = regexp.MustCompile(`^[A-Z0-9]{4}$`)

// FacturacionUseCase orquesta las utilidades SUNAT para la API y el CLI:
// validación de documentos y comprobantes, cálculos, formato y PDF.
type FacturacionUseCase struct {
	validador     sunat.Validador
	monedaDefault sunat.TipoMoneda
	generator     FacturaPDFGenerator
	log           *logger.Logger
}

// NewFacturacionUseCase construye el caso de uso. generator puede ser nil si no se emiten PDFs;
// una moneda vacía o desconocida usa PEN.
func NewFacturacionUseCase(validador sunat.Validador, moneda string, generator FacturaPDFGenerator, log *logger.Logger) *FacturacionUseCase {
	m := sunat.TipoMoneda(strings.ToUpper(strings.TrimSpace(moneda)))
	if !m.Valido() {
		m = sunat.MonedaSoles
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FacturacionUseCase{
		validador:     validador,
		monedaDefault: m,
		generator:     generator,
		log:           log.Componente("facturacion"),
	}
}

// ValidarDocumento valida un documento de identidad con la política del caso de uso.
func (uc *FacturacionUseCase) ValidarDocumento(req dto.ValidarDocumentoRequest) sunat.ValidacionResultado {
	return uc.validador.Documento(sunat.TipoDocumento(strings.TrimSpace(req.TipoDocumento)), req.NumeroDocumento)
}

// FormatearMonto formatea el monto y lo expresa en letras.
// Retorna domain.ErrInvalidInput si el monto es negativo o no finito, o si los decimales
// están fuera de 0..formato.MaxDecimales.
func (uc *FacturacionUseCase) FormatearMonto(req dto.FormatearMontoRequest) (dto.FormatearMontoResponse, error) {
	if !sunat.ValidateMonto(req.Monto) {
		return dto.FormatearMontoResponse{}, fmt.Errorf("%w: el monto debe ser un número no negativo", domain.ErrInvalidInput)
	}

	if req.Decimales != nil && (*req.Decimales < 0 || *req.Decimales > formato.MaxDecimales) {
		return dto.FormatearMontoResponse{}, fmt.Errorf("%w: los decimales deben estar entre 0 y %d", domain.ErrInvalidInput, formato.MaxDecimales)
	}

	moneda := uc.monedaDefault
	if req.Moneda != "" {
		moneda = sunat.TipoMoneda(strings.ToUpper(req.Moneda))
	}

	opts := []formato.Opcion{formato.ConSimbolo(moneda.Simbolo())}
	if req.Decimales != nil {
		opts = append(opts, formato.ConDecimales(*req.Decimales))
	}
	if req.SeparadorMiles != nil {
		opts = append(opts, formato.ConSeparadorMiles(*req.SeparadorMiles))
	}
	if req.SeparadorDecimal != nil {
		opts = append(opts, formato.ConSeparadorDecimal(*req.SeparadorDecimal))
	}

	return dto.FormatearMontoResponse{
		Formateado: formato.FormatCurrency(req.Monto, opts...),
		EnLetras:   factura.MontoEnLetras(decimal.NewFromFloat(req.Monto), moneda),
	}, nil
}

// CalcularTotales suma los ítems (ver factura.CalcularTotalesFactura).
func (uc *FacturacionUseCase) CalcularTotales(items []sunat.Item) factura.Totales {
	return factura.CalcularTotalesFactura(items)
}

// ValidarFactura valida el comprobante completo. Si es válido, informa además
// el hash, la cadena del QR y el monto en letras.
func (uc *FacturacionUseCase) ValidarFactura(ctx context.Context, f *sunat.Factura) dto.ValidarFacturaResponse {
	uc.completar(f)

	err := comprobante.ValidateFactura(f, uc.validador)
	if err != nil {
		msgs := comprobante.Mensajes(err)
		uc.log.Debug().Int("errores", len(msgs)).Msg("comprobante rechazado")
		return dto.ValidarFacturaResponse{EsValida: false, Errores: msgs}
	}

	resp := dto.ValidarFacturaResponse{
		EsValida:       true,
		Errores:        []string{},
		NumeroCompleto: f.NumeroCompleto(),
		MontoEnLetras:  factura.MontoEnLetras(f.Total, f.Moneda),
		Total:          f.Total,
	}
	// Con la estructura validada no pueden fallar.
	resp.Hash, _ = factura.GenerarHashFactura(f)
	resp.CadenaQR, _ = factura.CadenaQR(f)

	uc.log.Info().Str("comprobante", resp.NumeroCompleto).Str("hash", resp.Hash).Msg("comprobante validado")
	return resp
}

// GenerarPDF valida el comprobante y genera su representación impresa.
// rucSolicitante limita la emisión al RUC del emisor; vacío = sin restricción.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrForbidden        si el emisor no corresponde a rucSolicitante.
//   - domain.ErrInvalidInput     si el comprobante no supera la validación.
func (uc *FacturacionUseCase) GenerarPDF(ctx context.Context, rucSolicitante string, f *sunat.Factura) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	uc.completar(f)

	if err := comprobante.ValidateFactura(f, uc.validador); err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if rucSolicitante != "" && f.Emisor.NumeroDocumento != rucSolicitante {
		return nil, "", fmt.Errorf("%w: el comprobante no pertenece al RUC %s", domain.ErrForbidden, rucSolicitante)
	}

	hash, err := factura.GenerarHashFactura(f)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: hash: %w", err)
	}
	qr, err := factura.CadenaQR(f)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: qr: %w", err)
	}

	pdfBytes, err = uc.generator.GenerarPDF(ctx, f, hash, qr)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = nombreArchivo(f.Emisor.NumeroDocumento, string(f.TipoComprobante), f.Serie, f.Numero) + ".pdf"
	uc.log.Info().Str("comprobante", f.NumeroCompleto()).Int("bytes", len(pdfBytes)).Msg("pdf generado")
	return pdfBytes, filename, nil
}

// SiguienteNumero devuelve el número completo que sigue a ultimo en la serie.
func (uc *FacturacionUseCase) SiguienteNumero(serie string, ultimo int) (dto.SiguienteNumeroResponse, error) {
	serie = strings.ToUpper(strings.TrimSpace(serie))
	if !seriePattern.MatchString(serie) {
		return dto.SiguienteNumeroResponse{}, fmt.Errorf("%w: la serie debe tener 4 caracteres alfanuméricos", domain.ErrInvalidInput)
	}
	if ultimo < 0 {
		return dto.SiguienteNumeroResponse{}, fmt.Errorf("%w: el último número no puede ser negativo", domain.ErrInvalidInput)
	}
	return dto.SiguienteNumeroResponse{
		Serie:          serie,
		Ultimo:         ultimo,
		NumeroCompleto: factura.GenerarNumeroSerie(serie, ultimo),
	}, nil
}

// completar aplica la moneda por defecto si el comprobante no la indica.
func (uc *FacturacionUseCase) completar(f *sunat.Factura) {
	if f != nil && f.Moneda == "" {
		f.Moneda = uc.monedaDefault
	}
}

// nombreArchivo une las partes con "-" dejando solo letras ASCII, dígitos y "_".
// El resultado se usa en Content-Disposition y como ruta local, sin comillas ni separadores de ruta.
func nombreArchivo(partes ...string) string {
	limpias := make([]string, len(partes))
	for i, p := range partes {
		limpias[i] = strings.Map(func(r rune) rune {
			switch {
			case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
				return r
			default:
				return '_'
			}
		}, p)
	}
	return strings.Join(limpias, "-")
}
