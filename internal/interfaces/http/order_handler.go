package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
)

// OrderHandler pedidos de tienda y envíos (página orders).
type OrderHandler struct {
	uc *workflow.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *workflow.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido de tienda
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Tienda, fecha de entrega y líneas"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "pending | processing | shipping | delivered"
// @Param        storeId  query  string  false  "Filtro por tienda"
// @Success      200      {object}  dto.ListResponse[dto.OrderResponse]
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetIdentity(c), c.Query("status"), c.Query("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete solo pedidos pending.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Process godoc
// @Summary      pending → processing
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/process [post]
func (h *OrderHandler) Process(c *fiber.Ctx) error {
	out, err := h.uc.Process(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ship godoc
// @Summary      processing → shipping; crea el envío
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.ShipResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/ship [post]
func (h *OrderHandler) Ship(c *fiber.Ctx) error {
	out, err := h.uc.Ship(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deliver godoc
// @Summary      shipping → delivered; confirma también el envío
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	out, err := h.uc.Deliver(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *OrderHandler) OrderShipments(c *fiber.Ctx) error {
	out, err := h.uc.ShipmentsByOrder(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// ── Envíos ────────────────────────────────────────────────────────────────────

func (h *OrderHandler) ListShipments(c *fiber.Ctx) error {
	out, err := h.uc.ListShipments(c.UserContext(), GetIdentity(c), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *OrderHandler) GetShipment(c *fiber.Ctx) error {
	out, err := h.uc.GetShipment(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dispatch preparing → in-transit.
func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	out, err := h.uc.DispatchShipment(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ConfirmDelivery godoc
// @Summary      Confirmar recepción del envío; el pedido pasa a delivered
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/delivered [post]
func (h *OrderHandler) ConfirmDelivery(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmDelivery(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
