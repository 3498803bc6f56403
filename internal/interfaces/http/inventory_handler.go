package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/inventory"
)

// InventoryHandler ingredientes, stock de producto terminado y reposición.
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListIngredients godoc
// @Summary      Listar ingredientes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "Ubicación"
// @Param        low       query  bool    false  "Solo bajo mínimo"
// @Success      200       {object}  dto.ListResponse[dto.IngredientResponse]
// @Router       /api/inventory/ingredients [get]
func (h *InventoryHandler) ListIngredients(c *fiber.Ctx) error {
	out, err := h.uc.ListIngredients(c.UserContext(), c.Query("location"), c.QueryBool("low", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *InventoryHandler) CreateIngredient(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateIngredient(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InventoryHandler) GetIngredient(c *fiber.Ctx) error {
	out, err := h.uc.GetIngredient(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) UpdateIngredient(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateIngredient(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) DeleteIngredient(c *fiber.Ctx) error {
	if err := h.uc.DeleteIngredient(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StockIn godoc
// @Summary      Entrada de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.StockAdjustRequest  true  "quantity > 0"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/ingredients/{id}/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockIn(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockOut godoc
// @Summary      Salida de stock (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.StockAdjustRequest  true  "quantity > 0 y <= stock"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/ingredients/{id}/stock-out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockOut(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProductStock stock de producto terminado con su clasificación.
func (h *InventoryHandler) ListProductStock(c *fiber.Ctx) error {
	out, err := h.uc.ListProductStock(c.UserContext(), c.Query("location"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *InventoryHandler) SetProductStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetProductStock(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock pestaña de stock bajo con la reposición sugerida.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *InventoryHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.Locations(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit > 500 {
		limit = 500
	}
	out, err := h.uc.Movements(c.UserContext(), c.Query("itemId"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}
