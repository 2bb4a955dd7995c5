package repository

import (
	"context"

	"github.com/tu-usuario/stock-lite/internal/domain/entity"
)

// MovementRepository puerto del histórico de movimientos, indexado por ítem.
// El histórico se guarda como un mapa itemID -> secuencia en orden de inserción.
type MovementRepository interface {
	// ListByItem devuelve los movimientos del ítem en orden de inserción.
	// Secuencia vacía si el ítem no tiene histórico.
	ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error)
	// Append agrega un movimiento al final del histórico de su ítem.
	Append(ctx context.Context, movement *entity.Movement) error
	// Remove elimina un movimiento puntual; domain.ErrMovementNotFound si no está.
	Remove(ctx context.Context, itemID, movementID string) error
	// DeleteAllForItem descarta el histórico completo de un ítem (cascada de borrado).
	DeleteAllForItem(ctx context.Context, itemID string) error
	// All devuelve el mapa completo itemID -> movimientos (exportación de respaldo).
	All(ctx context.Context) (map[string][]*entity.Movement, error)
	// ReplaceAll sustituye el histórico completo (importación de respaldo).
	ReplaceAll(ctx context.Context, history map[string][]*entity.Movement) error
}
