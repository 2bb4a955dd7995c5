// Package pdf implementa el reporte imprimible del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems / unidades / valor compra / valor venta      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Proveedor | Cant | P.Compra | P.Venta | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: ganancia potencial                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 88, Blue: 66}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	appName string
}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport(appName string) *MarotoStockReport {
	return &MarotoStockReport{appName: appName}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	items []dto.ItemResponse,
	summary dto.StockSummaryResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y fecha de generación (der).
func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: tarjetas de resumen en una sola línea.
func summaryRow(s dto.StockSummaryResponse) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ítems: %d   |   Unidades: %d   |   Valor compra: $%s   |   Valor venta: $%s   |   Bajo stock (≤%d): %d",
				s.UniqueItems, s.TotalUnits,
				s.TotalPurchaseValue.StringFixed(2), s.TotalSaleValue.StringFixed(2),
				s.LowStockThreshold, s.LowStockItems,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 4, align.Left),
		h("Proveedor", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Compra", 2, align.Right),
		h("P. Venta", 1, align.Right),
		h("Valor venta", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem del catálogo.
func tableItemRows(items []dto.ItemResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		value := it.SalePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(it.Supplier, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.PurchasePrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"$"+it.SalePrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+value.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: ganancia potencial alineada a la derecha.
func totalsRow(s dto.StockSummaryResponse) core.Row {
	return row.New(8).Add(
		col.New(7),
		col.New(3).Add(text.New("Ganancia potencial:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New("$"+s.PotentialProfit.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			Color: colorPrimary,
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
