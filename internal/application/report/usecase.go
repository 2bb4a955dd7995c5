// Package report arma el reporte imprimible del inventario (PDF).
package report

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/item"
)

// StockReportGenerator puerto del generador del documento.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, items []dto.ItemResponse, summary dto.StockSummaryResponse, generatedAt time.Time) ([]byte, error)
}

// UseCase caso de uso del reporte de inventario.
type UseCase struct {
	items     *item.UseCase
	generator StockReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(items *item.UseCase, generator StockReportGenerator) *UseCase {
	return &UseCase{items: items, generator: generator}
}

// maxReportItems tope de filas del reporte; muy por encima de cualquier
// catálogo real de esta aplicación.
const maxReportItems = 10000

// GenerateStockPDF devuelve los bytes del PDF con el catálogo completo
// ordenado por nombre y el resumen de totales.
func (uc *UseCase) GenerateStockPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.items.List(ctx, dto.ListItemsQuery{
		SortBy:      "name",
		SortDir:     "asc",
		PageRequest: dto.PageRequest{Limit: maxReportItems},
	})
	if err != nil {
		return nil, err
	}
	summary, err := uc.items.Summary(ctx, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, list.Items, *summary, time.Now())
}
