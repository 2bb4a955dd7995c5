package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound      = errors.New("ítem no encontrado")
	ErrMovementNotFound  = errors.New("movimiento no encontrado")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error de almacenamiento")
)

// InsufficientStockError indica que una salida excede el stock disponible.
// Lleva la cantidad actual para que el caller pueda mostrarla.
type InsufficientStockError struct {
	ItemID    string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponibles %d, solicitadas %d", e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StorageError envuelve una falla opaca de la capa de persistencia.
// El dominio no interpreta la causa; solo la propaga.
func StorageError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, cause)
}
