// Package pdf implementa la representación impresa de comprobantes electrónicos SUNAT.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + dirección │ RUC + TIPO + SERIE-NUM   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ADQUIRIENTE: Nombre + documento + fecha + moneda            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Unid | Descripción | V.Unit | IGV | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Op. gravada / IGV / IMPORTE TOTAL + SON: ...       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR + hash + leyenda                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/facturacion-pe/pkg/factura"
	"github.com/jhoicas/facturacion-pe/pkg/formato"
	"github.com/jhoicas/facturacion-pe/pkg/sunat"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 170, Green: 20, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.FacturaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarPDF genera el PDF y devuelve sus bytes. Requiere emisor y receptor.
func (g *MarotoPDFGenerator) GenerarPDF(_ context.Context, f *sunat.Factura, hash, qr string) ([]byte, error) {
	if f == nil || f.Emisor == nil || f.Receptor == nil {
		return nil, fmt.Errorf("pdf: %w", factura.ErrFacturaIncompleta)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(f.TipoComprobante.Titulo()+" "+f.NumeroCompleto(), true).
		WithAuthor(f.Emisor.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receptorRow(f))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(f)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(f))
	m.AddRows(montoEnLetrasRow(f))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(f, hash, qr)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq) y recuadro RUC + tipo + número (der).
func headerRow(f *sunat.Factura) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(f.Emisor.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(f.Emisor.Direccion, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(f.Emisor.Telefono, "—"),
				nonEmpty(f.Emisor.Email, "—"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RUC "+f.Emisor.NumeroDocumento, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			}),
			text.New(nonEmpty(f.TipoComprobante.Titulo(), string(f.TipoComprobante)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 8,
			}),
			text.New(f.NumeroCompleto(), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 15,
			}),
		),
	)
}

// receptorRow: datos del adquiriente, fecha y moneda.
func receptorRow(f *sunat.Factura) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ADQUIRIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(formato.CapitalizeWords(f.Receptor.RazonSocial), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s: %s   |   Dirección: %s",
				f.Receptor.TipoDocumento.String(),
				documento(f.Receptor),
				nonEmpty(f.Receptor.Direccion, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha de emisión: "+formato.FormatDate(f.FechaEmision), props.Text{
				Size: 8, Align: align.Right, Top: 6,
			}),
			text.New("Moneda: "+nonEmpty(f.Moneda.Nombre(), string(f.Moneda)), props.Text{
				Size: 8, Align: align.Right, Top: 12,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Unid.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("V. Unit.", 2, align.Right),
		h("IGV", 1, align.Right),
		h("Valor venta", 2, align.Right),
	)
}

// tableDetailRows: una fila por ítem.
func tableDetailRows(f *sunat.Factura) []core.Row {
	result := make([]core.Row, 0, len(f.Items))
	for _, it := range f.Items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Cantidad.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.UnidadMedida,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formato.FormatDecimal(it.ValorUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				formato.FormatDecimal(it.IGV),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formato.FormatDecimal(it.ValorTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(f *sunat.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Op. gravada:"),
			text.New("IGV (18%):", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("IMPORTE TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 11,
			}),
		),
		col.New(3).Add(
			value(formato.FormatDecimalByType(f.Subtotal, f.Moneda), 0),
			value(formato.FormatDecimalByType(f.IGV, f.Moneda), 5),
			text.New(formato.FormatDecimalByType(f.Total, f.Moneda), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 11,
			}),
		),
	)
}

// montoEnLetrasRow: leyenda 1000.
func montoEnLetrasRow(f *sunat.Factura) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("SON: "+factura.MontoEnLetras(f.Total, f.Moneda), props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2,
		}),
	))
}

// footerRows: QR + hash + observaciones + leyenda.
func footerRows(f *sunat.Factura, hash, qr string) []core.Row {
	var rows []core.Row

	if qr != "" {
		rows = append(rows, row.New(40).Add(
			col.New(3).Add(code.NewQr(qr, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Representación impresa de la "+f.TipoComprobante.Titulo(), props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorPrimary,
				}),
				text.New("Código hash: "+nonEmpty(hash, "—"), props.Text{
					Size: 8, Top: 12, Left: 3, Color: colorGray,
				}),
			),
		))
	} else {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Código hash: "+nonEmpty(hash, "—"), props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	if f.Observaciones != "" {
		for _, chunk := range splitEvery(f.Observaciones, 110) {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(chunk, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
			)))
		}
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento no reemplaza al comprobante electrónico remitido a SUNAT. "+
				"Conserve este documento como soporte tributario.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documento(e *sunat.Entidad) string {
	switch e.TipoDocumento {
	case sunat.TipoDocumentoDNI:
		return formato.FormatDocumento(e.NumeroDocumento, formato.FormatoDNI)
	case sunat.TipoDocumentoRUC:
		return formato.FormatDocumento(e.NumeroDocumento, formato.FormatoRUC)
	default:
		return formato.FormatDocumento(e.NumeroDocumento, formato.FormatoOtros)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// splitEvery divide s en trozos de max n runas.
func splitEvery(s string, n int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		parts = append(parts, string(r))
	}
	return parts
}
