package storage

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/stock-lite/internal/domain"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el KV.
// El histórico completo vive bajo la clave movementHistory como objeto JSON
// itemID -> arreglo de movimientos en orden de inserción.
type MovementRepo struct {
	kv KV
}

// NewMovementRepository construye el adaptador de persistencia del histórico.
func NewMovementRepository(kv KV) *MovementRepo {
	return &MovementRepo{kv: kv}
}

func (r *MovementRepo) load(ctx context.Context) (map[string][]*entity.Movement, error) {
	raw, err := r.kv.Get(ctx, keyHistory)
	if err != nil {
		return nil, domain.StorageError("leer histórico", err)
	}
	history := make(map[string][]*entity.Movement)
	if raw == nil {
		return history, nil
	}
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, domain.StorageError("decodificar histórico", err)
	}
	// Los respaldos antiguos no llevan itemId dentro del movimiento;
	// la clave del mapa es la fuente de verdad.
	for itemID, movs := range history {
		for _, m := range movs {
			if m.ItemID == "" {
				m.ItemID = itemID
			}
		}
	}
	return history, nil
}

func (r *MovementRepo) store(ctx context.Context, history map[string][]*entity.Movement) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return domain.StorageError("codificar histórico", err)
	}
	if err := r.kv.Set(ctx, keyHistory, raw); err != nil {
		return domain.StorageError("guardar histórico", err)
	}
	return nil
}

// ListByItem devuelve los movimientos del ítem en orden de inserción.
func (r *MovementRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	history, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	movs := history[itemID]
	if movs == nil {
		return []*entity.Movement{}, nil
	}
	return movs, nil
}

// Append agrega el movimiento al final del histórico de su ítem.
func (r *MovementRepo) Append(ctx context.Context, movement *entity.Movement) error {
	history, err := r.load(ctx)
	if err != nil {
		return err
	}
	history[movement.ItemID] = append(history[movement.ItemID], movement)
	return r.store(ctx, history)
}

// Remove elimina un movimiento puntual; domain.ErrMovementNotFound si no está.
func (r *MovementRepo) Remove(ctx context.Context, itemID, movementID string) error {
	history, err := r.load(ctx)
	if err != nil {
		return err
	}
	movs := history[itemID]
	idx := -1
	for i, m := range movs {
		if m.ID == movementID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrMovementNotFound
	}
	movs = append(movs[:idx], movs[idx+1:]...)
	if len(movs) == 0 {
		// Sin movimientos no se conserva la entrada del ítem en el mapa.
		delete(history, itemID)
	} else {
		history[itemID] = movs
	}
	return r.store(ctx, history)
}

// DeleteAllForItem descarta el histórico completo de un ítem.
// Sin efecto sobre su cantidad: se usa solo durante el borrado del ítem.
func (r *MovementRepo) DeleteAllForItem(ctx context.Context, itemID string) error {
	history, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := history[itemID]; !ok {
		return nil
	}
	delete(history, itemID)
	return r.store(ctx, history)
}

// All devuelve el mapa completo itemID -> movimientos.
func (r *MovementRepo) All(ctx context.Context) (map[string][]*entity.Movement, error) {
	return r.load(ctx)
}

// ReplaceAll sustituye el histórico completo (importación de respaldo).
func (r *MovementRepo) ReplaceAll(ctx context.Context, history map[string][]*entity.Movement) error {
	if history == nil {
		history = make(map[string][]*entity.Movement)
	}
	for itemID, movs := range history {
		for _, m := range movs {
			if m.ItemID == "" {
				m.ItemID = itemID
			}
		}
	}
	return r.store(ctx, history)
}
