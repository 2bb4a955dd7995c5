// Package storage implementa la persistencia de stock-lite sobre un almacén
// clave-valor opaco de sobrescritura total: cada colección vive bajo una única
// clave y se lee/escribe completa, como el localStorage que reemplaza.
// Backends: memoria (dev y tests) y PostgreSQL (tabla kv_entries).
package storage

import "context"

// Claves de las colecciones persistidas. Se conservan los nombres del
// documento exportado para que el respaldo JSON haga round-trip sin cambios.
const (
	keyItems   = "stockItems"
	keyHistory = "movementHistory"
)

// KV puerto del almacén clave-valor. Get devuelve nil (sin error) si la clave
// no existe. Set sobrescribe el valor completo; no hay actualizaciones parciales.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
