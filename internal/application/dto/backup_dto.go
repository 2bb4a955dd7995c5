package dto

import "github.com/tu-usuario/stock-lite/internal/domain/entity"

// BackupDocument es el documento JSON de respaldo completo. La forma es la
// misma del archivo exportado por versiones anteriores ({items, history}): un
// respaldo exportado debe poder reimportarse sin cambios.
type BackupDocument struct {
	Items   []*entity.Item                `json:"items"`
	History map[string][]*entity.Movement `json:"history,omitempty"`
}

// ImportResultResponse resumen de una importación aplicada.
type ImportResultResponse struct {
	Items     int `json:"items"`
	Movements int `json:"movements"`
}
