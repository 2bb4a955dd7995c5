package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un ítem de stock de la aplicación mono-usuario.
// Quantity es el saldo actual: solo el ledger de movimientos lo ajusta
// (salvo la edición completa del formulario, que puede fijarlo directo).
// Los tags JSON conservan la forma del documento exportado/importado.
type Item struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Image         string          `json:"image,omitempty"` // data-URL opaca; el core no la interpreta
	RegisteredAt  time.Time       `json:"registeredAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SetQuantity fija el saldo del ítem con piso en 0 y actualiza UpdatedAt.
// Es el único camino que usa el ledger para ajustar cantidades.
func (i *Item) SetQuantity(quantity int, now time.Time) {
	if quantity < 0 {
		quantity = 0
	}
	i.Quantity = quantity
	i.UpdatedAt = now
}
