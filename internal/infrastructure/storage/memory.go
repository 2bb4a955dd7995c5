package storage

import (
	"context"
	"sync"
)

var _ KV = (*Memory)(nil)

// Memory KV en memoria. Backend por defecto en development y en los tests;
// no persiste entre reinicios.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory construye el almacén vacío.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor o nil si la clave no existe.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set sobrescribe el valor completo de la clave.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete elimina la clave; no-op si no existe.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
