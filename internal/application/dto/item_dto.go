package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para registrar un ítem. La cantidad inicial es un
// saldo de apertura, no un movimiento: no queda en el histórico.
type CreateItemRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Supplier      string          `json:"supplier"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Image         string          `json:"image"`
}

// UpdateItemRequest entrada para editar un ítem (guardado completo del
// formulario). Quantity es opcional: si viene, fija el saldo directamente,
// como hace el guardado completo del formulario de edición.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Supplier      *string          `json:"supplier"`
	Quantity      *int             `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	Image         *string          `json:"image"`
}

// ListItemsQuery parámetros de búsqueda, orden y paginación del listado.
type ListItemsQuery struct {
	Search    string `query:"search"`
	SortBy    string `query:"sort_by"`   // name, quantity, purchasePrice, salePrice, registeredAt
	SortDir   string `query:"sort_dir"`  // asc, desc
	LowStock  bool   `query:"low_stock"` // solo ítems con quantity <= threshold
	Threshold int    `query:"threshold"`
	PageRequest
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Image         string          `json:"image,omitempty"`
	RegisteredAt  time.Time       `json:"registeredAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// StockSummaryResponse resumen general del estoque para las tarjetas de la
// vista: conteos, valor de compra/venta y ganancia potencial.
type StockSummaryResponse struct {
	UniqueItems        int             `json:"uniqueItems"`
	TotalUnits         int             `json:"totalUnits"`
	TotalPurchaseValue decimal.Decimal `json:"totalPurchaseValue"`
	TotalSaleValue     decimal.Decimal `json:"totalSaleValue"`
	PotentialProfit    decimal.Decimal `json:"potentialProfit"`
	LowStockItems      int             `json:"lowStockItems"`
	LowStockThreshold  int             `json:"lowStockThreshold"`
}
