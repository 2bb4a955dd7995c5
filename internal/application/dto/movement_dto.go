package dto

import "time"

// RecordMovementRequest body para POST /api/items/:id/movements.
// Type acepta "entrada"/"salida" y sus alias históricos ("saida", "in", "out").
type RecordMovementRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// MovementListResponse histórico de un ítem, del más reciente al más antiguo.
type MovementListResponse struct {
	ItemID    string             `json:"itemId"`
	Movements []MovementResponse `json:"movements"`
	Total     int                `json:"total"`
}
