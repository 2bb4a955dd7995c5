package repository

import (
	"context"

	"github.com/tu-usuario/stock-lite/internal/domain/entity"
)

// ItemRepository puerto de persistencia del catálogo de ítems.
// El backend es un key-value store de sobrescritura total: cada operación
// lee, modifica y reescribe la colección completa.
type ItemRepository interface {
	// GetByID devuelve el ítem o nil si no existe (sin error).
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// List devuelve la colección completa en el orden persistido.
	List(ctx context.Context) ([]*entity.Item, error)
	// Save inserta o reemplaza el ítem según su ID.
	Save(ctx context.Context, item *entity.Item) error
	// Delete elimina el ítem; no-op si no existe (convención idempotente).
	Delete(ctx context.Context, id string) error
	// ReplaceAll sustituye la colección completa (importación de respaldo).
	ReplaceAll(ctx context.Context, items []*entity.Item) error
}
