// Package ledger implementa el libro de movimientos de stock: registrar
// entradas/salidas contra un ítem, listar su histórico y revertir un
// movimiento eliminándolo. Es el único componente que ajusta cantidades.
package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-lite/internal/domain"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

// UseCase casos de uso del ledger de movimientos.
type UseCase struct {
	runner    TxRunner
	movements repository.MovementRepository
}

// NewUseCase construye el caso de uso. Las lecturas usan el repositorio
// directo; toda mutación pasa por el runner.
func NewUseCase(runner TxRunner, movements repository.MovementRepository) *UseCase {
	return &UseCase{runner: runner, movements: movements}
}

// RecordMovement registra un movimiento y ajusta el saldo del ítem.
// Entrada: siempre suma. Salida: falla con InsufficientStockError (llevando
// el saldo disponible) si excede el stock actual, sin efecto alguno.
// Toda precondición se valida antes de escribir: ante cualquier error ni el
// catálogo ni el histórico quedan modificados.
func (uc *UseCase) RecordMovement(ctx context.Context, itemID string, mType entity.MovementType, quantity int) (*entity.Movement, error) {
	if mType != entity.MovementEntry && mType != entity.MovementExit {
		return nil, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var created *entity.Movement
	err := uc.runner.Run(ctx, func(items repository.ItemRepository, movements repository.MovementRepository) error {
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if mType == entity.MovementExit && quantity > item.Quantity {
			return &domain.InsufficientStockError{
				ItemID:    itemID,
				Available: item.Quantity,
				Requested: quantity,
			}
		}

		now := time.Now()
		item.SetQuantity(item.Quantity+mType.Sign()*quantity, now)
		if err := items.Save(ctx, item); err != nil {
			return err
		}

		created = &entity.Movement{
			ID:        uuid.New().String(),
			ItemID:    itemID,
			Type:      mType,
			Quantity:  quantity,
			Timestamp: now,
		}
		return movements.Append(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMovements devuelve el histórico del ítem ordenado del más reciente al
// más antiguo; a igual timestamp se preserva el orden de inserción.
// Un ítem sin histórico (o ya eliminado) devuelve la secuencia vacía.
func (uc *UseCase) ListMovements(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	movs, err := uc.movements.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	sorted := make([]*entity.Movement, len(movs))
	copy(sorted, movs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted, nil
}

// DeleteMovement elimina un movimiento aplicando el inverso exacto de su
// efecto sobre el saldo (entrada resta, salida suma), con piso en 0.
// Ajuste de saldo y eliminación del histórico van como una sola unidad.
func (uc *UseCase) DeleteMovement(ctx context.Context, itemID, movementID string) error {
	return uc.runner.Run(ctx, func(items repository.ItemRepository, movements repository.MovementRepository) error {
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		movs, err := movements.ListByItem(ctx, itemID)
		if err != nil {
			return err
		}
		var target *entity.Movement
		for _, m := range movs {
			if m.ID == movementID {
				target = m
				break
			}
		}
		if target == nil {
			return domain.ErrMovementNotFound
		}

		item.SetQuantity(item.Quantity-target.Type.Sign()*target.Quantity, time.Now())
		if err := items.Save(ctx, item); err != nil {
			return err
		}
		return movements.Remove(ctx, itemID, movementID)
	})
}

// DeleteAllForItem descarta el histórico completo de un ítem sin tocar
// cantidades. Parte del contrato de borrado en cascada: el orquestador
// elimina el ítem y luego invoca esta operación.
func (uc *UseCase) DeleteAllForItem(ctx context.Context, itemID string) error {
	return uc.runner.Run(ctx, func(_ repository.ItemRepository, movements repository.MovementRepository) error {
		return movements.DeleteAllForItem(ctx, itemID)
	})
}
