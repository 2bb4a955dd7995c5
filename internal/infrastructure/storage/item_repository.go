package storage

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/stock-lite/internal/domain"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre el KV.
// La colección completa vive bajo la clave stockItems como arreglo JSON;
// toda mutación es leer-modificar-reescribir el arreglo entero.
type ItemRepo struct {
	kv KV
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(kv KV) *ItemRepo {
	return &ItemRepo{kv: kv}
}

func (r *ItemRepo) load(ctx context.Context) ([]*entity.Item, error) {
	raw, err := r.kv.Get(ctx, keyItems)
	if err != nil {
		return nil, domain.StorageError("leer ítems", err)
	}
	if raw == nil {
		return []*entity.Item{}, nil
	}
	var items []*entity.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.StorageError("decodificar ítems", err)
	}
	return items, nil
}

func (r *ItemRepo) store(ctx context.Context, items []*entity.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return domain.StorageError("codificar ítems", err)
	}
	if err := r.kv.Set(ctx, keyItems, raw); err != nil {
		return domain.StorageError("guardar ítems", err)
	}
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// List devuelve la colección completa en el orden persistido.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.load(ctx)
}

// Save inserta o reemplaza el ítem según su ID.
func (r *ItemRepo) Save(ctx context.Context, item *entity.Item) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, it := range items {
		if it.ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return r.store(ctx, items)
}

// Delete elimina el ítem; no-op si no existe.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return r.store(ctx, kept)
}

// ReplaceAll sustituye la colección completa (importación de respaldo).
func (r *ItemRepo) ReplaceAll(ctx context.Context, items []*entity.Item) error {
	if items == nil {
		items = []*entity.Item{}
	}
	return r.store(ctx, items)
}
