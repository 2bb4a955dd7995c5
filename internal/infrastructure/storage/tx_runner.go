package storage

import (
	"context"
	"sync"

	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones sobre el KV con un mutex de proceso.
// El almacén solo garantiza sobrescritura total por clave, así que dos
// read-modify-write concurrentes se pisarían; aquí se ejecutan en fila.
// Entre procesos aplica last-write-wins, limitación aceptada del modelo.
type TxRunner struct {
	mu sync.Mutex
	kv KV
}

// NewTxRunner construye el runner sobre el KV.
func NewTxRunner(kv KV) *TxRunner {
	return &TxRunner{kv: kv}
}

// Run ejecuta fn con repositorios atados al mismo KV, bajo el lock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	movements repository.MovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(NewItemRepository(r.kv), NewMovementRepository(r.kv))
}
