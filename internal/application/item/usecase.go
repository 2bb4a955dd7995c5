// Package item implementa el Item Store: CRUD del catálogo, listado con
// búsqueda/orden/paginación y el resumen general del stock. La cantidad es
// del ledger: aquí solo la fija el alta inicial o la edición completa.
package item

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/domain"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

// UseCase casos de uso del catálogo de ítems.
type UseCase struct {
	runner           ledger.TxRunner
	items            repository.ItemRepository
	defaultThreshold int
}

// NewUseCase construye el caso de uso. defaultThreshold es el umbral de bajo
// stock cuando el caller no envía uno.
func NewUseCase(runner ledger.TxRunner, items repository.ItemRepository, defaultThreshold int) *UseCase {
	return &UseCase{runner: runner, items: items, defaultThreshold: defaultThreshold}
}

func validatePrices(purchase, sale decimal.Decimal) error {
	if purchase.IsNegative() || sale.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un ítem nuevo. La cantidad inicial es un saldo de apertura:
// no genera movimiento en el histórico.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validatePrices(in.PurchasePrice, in.SalePrice); err != nil {
		return nil, err
	}

	now := time.Now()
	it := &entity.Item{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   strings.TrimSpace(in.Description),
		Supplier:      strings.TrimSpace(in.Supplier),
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Image:         in.Image,
		RegisteredAt:  now,
		UpdatedAt:     now,
	}
	err := uc.runner.Run(ctx, func(items repository.ItemRepository, _ repository.MovementRepository) error {
		return items.Save(ctx, it)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(it), nil
}

// GetByID obtiene un ítem por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	it, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(it), nil
}

// Update aplica la edición completa del formulario. Quantity, si viene,
// fija el saldo directamente; los movimientos previos no se recalculan.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	var updated *entity.Item
	err := uc.runner.Run(ctx, func(items repository.ItemRepository, _ repository.MovementRepository) error {
		it, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if it == nil {
			return domain.ErrItemNotFound
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			it.Name = name
		}
		if in.Description != nil {
			it.Description = strings.TrimSpace(*in.Description)
		}
		if in.Supplier != nil {
			it.Supplier = strings.TrimSpace(*in.Supplier)
		}
		if in.PurchasePrice != nil {
			it.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			it.SalePrice = *in.SalePrice
		}
		if err := validatePrices(it.PurchasePrice, it.SalePrice); err != nil {
			return err
		}
		if in.Image != nil {
			it.Image = *in.Image
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return domain.ErrInvalidInput
			}
			it.Quantity = *in.Quantity
		}
		it.UpdatedAt = time.Now()
		updated = it
		return items.Save(ctx, it)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Delete elimina el ítem y su histórico de movimientos como una unidad.
// Idempotente: borrar un ítem inexistente no es error.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.runner.Run(ctx, func(items repository.ItemRepository, movements repository.MovementRepository) error {
		if err := items.Delete(ctx, id); err != nil {
			return err
		}
		// Cascada por orquestación del caller: el ítem ya no existe, así que
		// el descarte del histórico no compensa cantidades.
		return movements.DeleteAllForItem(ctx, id)
	})
}

// List devuelve el listado con búsqueda, filtro de bajo stock, orden y
// paginación, tal como lo consume la tabla principal de la interfaz.
func (uc *UseCase) List(ctx context.Context, q dto.ListItemsQuery) (*dto.ItemListResponse, error) {
	all, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := all
	if term := fold(strings.TrimSpace(q.Search)); term != "" {
		filtered = nil
		for _, it := range all {
			if matches(term, it.Name, it.Description, it.Supplier) {
				filtered = append(filtered, it)
			}
		}
	}
	if q.LowStock {
		threshold := q.Threshold
		if threshold <= 0 {
			threshold = uc.defaultThreshold
		}
		kept := filtered[:0:0]
		for _, it := range filtered {
			if it.Quantity <= threshold {
				kept = append(kept, it)
			}
		}
		filtered = kept
	}

	sortItems(filtered, q.SortBy, q.SortDir)

	q.DefaultPage()
	total := len(filtered)
	start := q.Offset
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	resp := &dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, end-start),
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}
	for _, it := range filtered[start:end] {
		resp.Items = append(resp.Items, *toItemResponse(it))
	}
	return resp, nil
}

// Summary calcula el resumen general: conteos, valor total de compra y
// venta, ganancia potencial y cuántos ítems están en o por debajo del umbral.
func (uc *UseCase) Summary(ctx context.Context, threshold int) (*dto.StockSummaryResponse, error) {
	if threshold <= 0 {
		threshold = uc.defaultThreshold
	}
	all, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.StockSummaryResponse{
		UniqueItems:        len(all),
		TotalPurchaseValue: decimal.Zero,
		TotalSaleValue:     decimal.Zero,
		PotentialProfit:    decimal.Zero,
		LowStockThreshold:  threshold,
	}
	for _, it := range all {
		qty := decimal.NewFromInt(int64(it.Quantity))
		out.TotalUnits += it.Quantity
		out.TotalPurchaseValue = out.TotalPurchaseValue.Add(it.PurchasePrice.Mul(qty))
		out.TotalSaleValue = out.TotalSaleValue.Add(it.SalePrice.Mul(qty))
		if it.Quantity <= threshold {
			out.LowStockItems++
		}
	}
	out.PotentialProfit = out.TotalSaleValue.Sub(out.TotalPurchaseValue)
	return out, nil
}

func sortItems(items []*entity.Item, by, dir string) {
	desc := strings.EqualFold(dir, "desc")
	var less func(a, b *entity.Item) bool
	switch by {
	case "quantity":
		less = func(a, b *entity.Item) bool { return a.Quantity < b.Quantity }
	case "purchasePrice":
		less = func(a, b *entity.Item) bool { return a.PurchasePrice.LessThan(b.PurchasePrice) }
	case "salePrice":
		less = func(a, b *entity.Item) bool { return a.SalePrice.LessThan(b.SalePrice) }
	case "registeredAt":
		less = func(a, b *entity.Item) bool { return a.RegisteredAt.Before(b.RegisteredAt) }
	default: // name
		less = func(a, b *entity.Item) bool { return fold(a.Name) < fold(b.Name) }
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Supplier:      it.Supplier,
		Quantity:      it.Quantity,
		PurchasePrice: it.PurchasePrice,
		SalePrice:     it.SalePrice,
		Image:         it.Image,
		RegisteredAt:  it.RegisteredAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
