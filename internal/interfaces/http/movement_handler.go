package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar un movimiento (entrada/salida)
// @Description  Una salida que excede el stock disponible responde 409 con la
//
//	cantidad disponible y no modifica nada.
//
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del ítem"
// @Param        body  body  dto.RecordMovementRequest  true  "type: entrada|salida, quantity > 0"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "type debe ser entrada o salida"})
	}
	mov, err := h.uc.RecordMovement(c.Context(), c.Params("id"), mType, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Histórico de movimientos de un ítem
// @Description  Del más reciente al más antiguo; a igual timestamp se preserva
//
//	el orden de inserción. Un ítem sin histórico devuelve la lista vacía.
//
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/items/{id}/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	itemID := c.Params("id")
	movs, err := h.uc.ListMovements(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.MovementListResponse{
		ItemID:    itemID,
		Movements: make([]dto.MovementResponse, 0, len(movs)),
		Total:     len(movs),
	}
	for _, m := range movs {
		out.Movements = append(out.Movements, toMovementResponse(m))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un movimiento revirtiendo su efecto
// @Tags         movements
// @Param        id          path  string  true  "ID del ítem"
// @Param        movementId  path  string  true  "ID del movimiento"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/movements/{movementId} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.Context(), c.Params("id"), c.Params("movementId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Timestamp: m.Timestamp,
	}
}
