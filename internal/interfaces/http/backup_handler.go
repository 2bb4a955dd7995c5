package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-lite/internal/application/backup"
	"github.com/tu-usuario/stock-lite/internal/application/dto"
)

// BackupHandler maneja exportación, importación y borrado total del dataset.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar el dataset completo
// @Description  Devuelve {items, history} tal como está persistido; el documento
//
//	se reimporta sin cambios.
//
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque_backup.json"`)
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar un respaldo reemplazando todo
// @Description  Sustituye ítems e histórico por el contenido del documento.
//
//	Un documento sin history limpia el histórico.
//
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupDocument  true  "documento {items, history}"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var doc dto.BackupDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "el archivo no es un JSON de respaldo válido"})
	}
	out, err := h.uc.Import(c.Context(), doc)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Borrar todos los datos
// @Tags         backup
// @Success      204  "sin contenido"
// @Router       /api/backup [delete]
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
