package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/internal/application/item"
)

// ItemHandler maneja las peticiones HTTP del catálogo de ítems.
type ItemHandler struct {
	uc *item.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *item.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un ítem
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, quantity (saldo inicial), purchasePrice, salePrice, supplier, description, image"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ítems
// @Description  Búsqueda por nombre/descripción/proveedor (insensible a acentos),
//
//	filtro de bajo stock, orden y paginación.
//
// @Tags         items
// @Produce      json
// @Param        search     query  string  false  "término de búsqueda"
// @Param        sort_by    query  string  false  "name | quantity | purchasePrice | salePrice | registeredAt"
// @Param        sort_dir   query  string  false  "asc | desc"
// @Param        low_stock  query  bool    false  "solo ítems en o bajo el umbral"
// @Param        threshold  query  int     false  "umbral de bajo stock"
// @Param        limit      query  int     false  "tamaño de página"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var q dto.ListItemsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del stock
// @Tags         items
// @Produce      json
// @Param        threshold  query  int  false  "umbral de bajo stock"
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/items/summary [get]
func (h *ItemHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), c.QueryInt("threshold"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un ítem
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar un ítem (guardado completo del formulario)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a modificar; quantity fija el saldo directo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un ítem y su histórico
// @Tags         items
// @Param        id  path  string  true  "ID del ítem"
// @Success      204  "sin contenido"
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
