package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/CentralKitchen-api/internal/application/analytics"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints de la página dashboard.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// GetStats devuelve los contadores y las filas recientes del dashboard.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (totalOrders, activeStores, productionBatches,
// lowStockItems, recentOrders[5], recentProduction[5]).
// El personal de tienda solo cuenta los pedidos de su tienda.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext(), GetIdentity(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// Activity últimos eventos de flujo de trabajo.
// GET /api/dashboard/activity?limit=20
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return c.JSON(dto.NewList(h.uc.Activity(GetIdentity(c), limit)))
}

// Report genera el PDF del tipo pedido (orders, production, inventory).
// GET /api/dashboard/reports/:type
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	data, filename, err := h.reports.Generate(c.UserContext(), GetIdentity(c), c.Params("type"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
