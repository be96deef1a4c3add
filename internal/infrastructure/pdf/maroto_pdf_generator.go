// Package pdf implementa la generación del reporte de existencias del almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Marca | SAP | Categoría | Ubicación | Cant.  │
//	│    └ lotes del item (N°, cantidad, vencimiento, ubicación)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE UNIDADES                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StockPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStockReport genera el PDF del reporte de existencias y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(_ context.Context, rep *report.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Existencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rep.Rows {
		m.AddRows(itemRow(r))
		for _, l := range r.Lots {
			m.AddRows(lotRow(l))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(rep *report.StockReport) core.Row {
	fecha := rep.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d items en inventario", len(rep.Rows)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 4, align.Left),
		h("Marca", 2, align.Left),
		h("SAP", 1, align.Center),
		h("Categoría", 2, align.Left),
		h("Ubicación", 2, align.Left),
		h("Cant.", 1, align.Right),
	)
}

// itemRow: fila principal de un item.
func itemRow(r report.StockRow) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(r.Name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(nonEmpty(r.Brand, "—"), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(nonEmpty(r.SapCode, "—"), props.Text{
			Size: 7, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New(nonEmpty(r.Category, "—"), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(nonEmpty(r.Location, "—"), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(r.Quantity.String(), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// lotRow: sublinea con los datos de un lote, indentada bajo su item.
func lotRow(l report.LotLine) core.Row {
	venc := "—"
	if l.ExpirationDate != nil {
		venc = l.ExpirationDate.Format("02/01/2006")
	}
	detail := fmt.Sprintf("Lote %d  ·  vence %s  ·  %s", l.LotNumber, venc, nonEmpty(l.Location, "—"))

	return row.New(5).Add(
		col.New(11).Add(text.New(detail, props.Text{
			Size: 7, Align: align.Left, Top: 0.5, Left: 6, Color: colorGray,
		})),
		col.New(1).Add(text.New(l.Quantity.String(), props.Text{
			Size: 7, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
		})),
	)
}

// totalRow: total de unidades alineado a la derecha.
func totalRow(rep *report.StockReport) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(3).Add(text.New("TOTAL DE UNIDADES:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(1).Add(text.New(rep.Total.String(), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
