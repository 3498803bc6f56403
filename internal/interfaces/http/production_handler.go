package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
)

// ProductionHandler planes y lotes de producción (página production).
type ProductionHandler struct {
	uc *workflow.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *workflow.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// CreatePlan godoc
// @Summary      Crear plan de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Producto, fecha y cantidad"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/plans [post]
func (h *ProductionHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePlan(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductionHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.uc.ListPlans(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *ProductionHandler) GetPlan(c *fiber.Ctx) error {
	out, err := h.uc.GetPlan(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductionHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.uc.DeletePlan(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartPlan godoc
// @Summary      planned → in-progress; crea el lote
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plan"
// @Success      200  {object}  dto.StartPlanResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/plans/{id}/start [post]
func (h *ProductionHandler) StartPlan(c *fiber.Ctx) error {
	out, err := h.uc.StartPlan(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductionHandler) CompletePlan(c *fiber.Ctx) error {
	out, err := h.uc.CompletePlan(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

func (h *ProductionHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBatch(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductionHandler) ListBatches(c *fiber.Ctx) error {
	out, err := h.uc.ListBatches(c.UserContext(), c.Query("status"), c.Query("planId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

func (h *ProductionHandler) GetBatch(c *fiber.Ctx) error {
	out, err := h.uc.GetBatch(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductionHandler) CompleteBatch(c *fiber.Ctx) error {
	out, err := h.uc.CompleteBatch(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductionHandler) SendToQualityCheck(c *fiber.Ctx) error {
	out, err := h.uc.SendToQualityCheck(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// QualityCheck godoc
// @Summary      Registrar control de calidad
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.QualityCheckRequest  true  "passed"
// @Success      200   {object}  dto.BatchResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/quality-check [post]
func (h *ProductionHandler) QualityCheck(c *fiber.Ctx) error {
	var in dto.QualityCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.QualityCheck(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
