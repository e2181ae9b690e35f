package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pe/internal/application/billing"
	"github.com/jhoicas/facturacion-pe/internal/application/dto"
	"github.com/jhoicas/facturacion-pe/internal/domain"
	"github.com/jhoicas/facturacion-pe/pkg/formato"
	"github.com/jhoicas/facturacion-pe/pkg/logger"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	calls int
	hash  string
	qr    string
	err   error
}

func (g *fakeGenerator) GenerarPDF(_ context.Context, _ *sunat.Factura, hash, qr string) ([]byte, error) {
	g.calls++
	g.hash, g.qr = hash, qr
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func newUseCase(gen billing.FacturaPDFGenerator) *billing.FacturacionUseCase {
	return billing.NewFacturacionUseCase(sunat.Validador{}, "PEN", gen, logger.Nop())
}

func facturaValida() *sunat.Factura {
	return &sunat.Factura{
		Serie:           "F001",
		Numero:          "00000001",
		TipoComprobante: sunat.TipoComprobanteFactura,
		FechaEmision:    time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		Emisor: &sunat.Entidad{
			TipoDocumento:   sunat.TipoDocumentoRUC,
			NumeroDocumento: "20100070971",
			RazonSocial:     "Empresa Emisora SAC",
		},
		Receptor: &sunat.Entidad{
			TipoDocumento:   sunat.TipoDocumentoRUC,
			NumeroDocumento: "20131854278",
			RazonSocial:     "Cliente SAC",
		},
		Items: []sunat.Item{{
			Codigo:         "P001",
			Descripcion:    "Servicio",
			Cantidad:       decimal.NewFromInt(1),
			UnidadMedida:   sunat.UnidadServicio,
			ValorUnitario:  decimal.NewFromInt(100),
			ValorTotal:     decimal.NewFromInt(100),
			IGV:            decimal.NewFromInt(18),
			TipoAfectacion: sunat.AfectacionGravado,
		}},
		Subtotal: decimal.NewFromInt(100),
		IGV:      decimal.NewFromInt(18),
		Total:    decimal.NewFromInt(118),
	}
}

// ── Documentos y montos ───────────────────────────────────────────────────────

func TestValidarDocumento(t *testing.T) {
	uc := newUseCase(nil)

	res := uc.ValidarDocumento(dto.ValidarDocumentoRequest{TipoDocumento: "1", NumeroDocumento: "12345678"})
	assert.True(t, res.EsValido)

	// El validador estricto rechaza los RUCs de ejemplo.
	res = uc.ValidarDocumento(dto.ValidarDocumentoRequest{TipoDocumento: "6", NumeroDocumento: "20123456789"})
	assert.False(t, res.EsValido)
	assert.Equal(t, []string{sunat.MsgRUCInvalido}, res.Errores)
}

func TestFormatearMonto_PorDefecto(t *testing.T) {
	uc := newUseCase(nil)

	resp, err := uc.FormatearMonto(dto.FormatearMontoRequest{Monto: 1234.5})
	require.NoError(t, err)
	assert.Equal(t, "S/ 1,234.50", resp.Formateado)
	assert.Equal(t, "MIL DOSCIENTOS TREINTA Y CUATRO CON 50/100 SOLES", resp.EnLetras)
}

func TestFormatearMonto_OpcionesParciales(t *testing.T) {
	uc := newUseCase(nil)
	dec := 0
	miles := "."

	resp, err := uc.FormatearMonto(dto.FormatearMontoRequest{
		Monto: 1234567.89, Moneda: "usd", Decimales: &dec, SeparadorMiles: &miles,
	})
	require.NoError(t, err)
	assert.Equal(t, "$ 1.234.568", resp.Formateado)
	assert.Equal(t, "MONTO DEMASIADO GRANDE CON 89/100 DÓLARES AMERICANOS", resp.EnLetras)
}

func TestFormatearMonto_Negativo(t *testing.T) {
	_, err := newUseCase(nil).FormatearMonto(dto.FormatearMontoRequest{Monto: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestFormatearMonto_DecimalesFueraDeRango(t *testing.T) {
	uc := newUseCase(nil)
	for _, d := range []int{-1, formato.MaxDecimales + 1, 2_000_000_000} {
		dec := d
		_, err := uc.FormatearMonto(dto.FormatearMontoRequest{Monto: 1, Decimales: &dec})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "decimales=%d", d)
	}

	dec := formato.MaxDecimales
	resp, err := uc.FormatearMonto(dto.FormatearMontoRequest{Monto: 1, Decimales: &dec})
	require.NoError(t, err)
	assert.Equal(t, "S/ 1.0000000000", resp.Formateado)
}

func TestCalcularTotales(t *testing.T) {
	tot := newUseCase(nil).CalcularTotales(facturaValida().Items)
	assert.Equal(t, "118", tot.Total.String())
}

// ── Facturas ──────────────────────────────────────────────────────────────────

func TestValidarFactura_Valida(t *testing.T) {
	f := facturaValida()
	resp := newUseCase(nil).ValidarFactura(context.Background(), f)

	assert.True(t, resp.EsValida)
	assert.Empty(t, resp.Errores)
	assert.Equal(t, sunat.MonedaSoles, f.Moneda, "aplica la moneda por defecto")
	assert.Equal(t, "F001-00000001", resp.NumeroCompleto)
	assert.NotEmpty(t, resp.Hash)
	assert.Equal(t, "20100070971|01|F001|00000001|18.00|118.00|2024-05-02|6|20131854278|", resp.CadenaQR)
	assert.Equal(t, "CIENTO DIECIOCHO CON 00/100 SOLES", resp.MontoEnLetras)
}

func TestValidarFactura_Invalida(t *testing.T) {
	f := facturaValida()
	f.Items = nil

	resp := newUseCase(nil).ValidarFactura(context.Background(), f)
	assert.False(t, resp.EsValida)
	assert.Contains(t, resp.Errores, "Al menos un item es requerido")
	assert.Empty(t, resp.Hash)
}

func TestGenerarPDF_OK(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newUseCase(gen)

	pdf, filename, err := uc.GenerarPDF(context.Background(), "20100070971", facturaValida())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "20100070971-01-F001-00000001.pdf", filename)
	assert.Equal(t, 1, gen.calls)
	assert.NotEmpty(t, gen.hash)
	assert.Contains(t, gen.qr, "20100070971|01|F001|00000001|")
}

func TestGenerarPDF_NombreArchivoSinCaracteresDeRuta(t *testing.T) {
	f := facturaValida()
	f.Serie = `../"x`
	f.Numero = "1/2"

	_, filename, err := newUseCase(&fakeGenerator{}).GenerarPDF(context.Background(), "", f)
	require.NoError(t, err)
	assert.Equal(t, "20100070971-01-____x-1_2.pdf", filename)
	assert.NotContains(t, filename, "/")
	assert.NotContains(t, filename, `"`)
}

func TestGenerarPDF_RUCAjeno(t *testing.T) {
	gen := &fakeGenerator{}
	_, _, err := newUseCase(gen).GenerarPDF(context.Background(), "20131854278", facturaValida())
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.Zero(t, gen.calls)
}

func TestGenerarPDF_FacturaInvalida(t *testing.T) {
	gen := &fakeGenerator{}
	f := facturaValida()
	f.Total = decimal.NewFromInt(1)

	_, _, err := newUseCase(gen).GenerarPDF(context.Background(), "", f)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, gen.calls)
}

func TestGenerarPDF_ErrorDelGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("sin fuentes")}
	_, _, err := newUseCase(gen).GenerarPDF(context.Background(), "", facturaValida())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin fuentes")
}

func TestGenerarPDF_SinGenerador(t *testing.T) {
	_, _, err := newUseCase(nil).GenerarPDF(context.Background(), "", facturaValida())
	assert.Error(t, err)
}

// ── Series ────────────────────────────────────────────────────────────────────

func TestSiguienteNumero(t *testing.T) {
	uc := newUseCase(nil)

	resp, err := uc.SiguienteNumero("f001", 41)
	require.NoError(t, err)
	assert.Equal(t, "F001", resp.Serie)
	assert.Equal(t, "F001-00000042", resp.NumeroCompleto)

	_, err = uc.SiguienteNumero("F1", 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.SiguienteNumero("F001", -1)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
