package entity

import (
	"time"

	"github.com/tu-usuario/stock-lite/internal/domain"
)

// MovementType tipo cerrado de movimiento: entrada o salida.
// Los respaldos viejos mezclaban etiquetas libres ("entrada"/"saida"); aquí se
// normalizan a dos variantes en la frontera y cualquier otra cosa se rechaza.
type MovementType string

const (
	MovementEntry MovementType = "entrada" // suma stock
	MovementExit  MovementType = "salida"  // resta stock
)

// ParseMovementType normaliza las etiquetas aceptadas al enum cerrado.
// Acepta los alias históricos del documento exportado y los anglosajones.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case "entrada", "entry", "in", "IN":
		return MovementEntry, nil
	case "salida", "saida", "exit", "out", "OUT":
		return MovementExit, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// Sign devuelve el efecto del tipo sobre la cantidad: +1 entrada, -1 salida.
func (t MovementType) Sign() int {
	if t == MovementEntry {
		return 1
	}
	return -1
}

// Movement representa un movimiento de stock de un ítem. Inmutable una vez
// creado: el único camino de reversa es eliminarlo del histórico.
type Movement struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"itemId"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"` // siempre > 0; el signo lo da Type
	Timestamp time.Time    `json:"timestamp"`
}
