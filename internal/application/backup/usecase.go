// Package backup implementa el respaldo completo del dataset: exportar
// {items, history} como un documento JSON, importarlo reemplazando ambas
// colecciones y el borrado total (la acción de limpiar todo).
package backup

import (
	"context"
	"strings"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/domain"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

// UseCase casos de uso de respaldo.
type UseCase struct {
	runner    ledger.TxRunner
	items     repository.ItemRepository
	movements repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(runner ledger.TxRunner, items repository.ItemRepository, movements repository.MovementRepository) *UseCase {
	return &UseCase{runner: runner, items: items, movements: movements}
}

// Export arma el documento de respaldo con ambas colecciones tal como están
// persistidas, para que la importación posterior haga round-trip exacto.
func (uc *UseCase) Export(ctx context.Context) (*dto.BackupDocument, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	history, err := uc.movements.All(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BackupDocument{Items: items, History: history}, nil
}

// Import valida el documento y reemplaza ambas colecciones completas.
// Un documento sin history limpia el histórico.
// Cualquier error de validación deja el estado intacto.
func (uc *UseCase) Import(ctx context.Context, doc dto.BackupDocument) (*dto.ImportResultResponse, error) {
	if doc.Items == nil {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(doc.Items))
	for _, it := range doc.Items {
		if it == nil || it.ID == "" || strings.TrimSpace(it.Name) == "" || it.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		if it.PurchasePrice.IsNegative() || it.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if seen[it.ID] {
			return nil, domain.ErrInvalidInput
		}
		seen[it.ID] = true
	}
	movements := 0
	for _, movs := range doc.History {
		for _, m := range movs {
			if m == nil || m.ID == "" || m.Quantity <= 0 {
				return nil, domain.ErrInvalidInput
			}
			if m.Type != entity.MovementEntry && m.Type != entity.MovementExit {
				// Los respaldos viejos traen etiquetas libres; se normalizan al importar.
				normalized, err := entity.ParseMovementType(string(m.Type))
				if err != nil {
					return nil, err
				}
				m.Type = normalized
			}
			movements++
		}
	}

	err := uc.runner.Run(ctx, func(items repository.ItemRepository, movs repository.MovementRepository) error {
		if err := items.ReplaceAll(ctx, doc.Items); err != nil {
			return err
		}
		return movs.ReplaceAll(ctx, doc.History)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultResponse{Items: len(doc.Items), Movements: movements}, nil
}

// Reset borra ítems e histórico por completo.
func (uc *UseCase) Reset(ctx context.Context) error {
	return uc.runner.Run(ctx, func(items repository.ItemRepository, movs repository.MovementRepository) error {
		if err := items.ReplaceAll(ctx, nil); err != nil {
			return err
		}
		return movs.ReplaceAll(ctx, nil)
	})
}
