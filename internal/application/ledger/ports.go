package ledger

import (
	"context"

	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

// TxRunner ejecuta una mutación sobre las dos colecciones como unidad:
// serializa los read-modify-write para que ninguna otra operación observe
// el catálogo y el histórico a medio actualizar.
// El almacén subyacente no ofrece transacciones; la atomicidad del ledger es
// validar todo antes de escribir y dejar las escrituras como pasos finales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		movements repository.MovementRepository,
	) error) error
}
