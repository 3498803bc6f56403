package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
)

// AccessHandler publica el catálogo de permisos a la consola.
type AccessHandler struct {
	svc *usecase.AccessService
}

// NewAccessHandler construye el handler.
func NewAccessHandler(svc *usecase.AccessService) *AccessHandler {
	return &AccessHandler{svc: svc}
}

// Me godoc
// @Summary      Páginas y funciones del rol de la sesión
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccessResponse
// @Router       /api/access/me [get]
func (h *AccessHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.svc.Me(GetIdentity(c)))
}

// CheckPage godoc
// @Summary      Consultar acceso a una página
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Param        page  path  string  true  "home, dashboard, production, inventory, orders, recipes, stores, users"
// @Success      200   {object}  dto.PageAccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/access/pages/{page} [get]
func (h *AccessHandler) CheckPage(c *fiber.Ctx) error {
	out, err := h.svc.CheckPage(GetIdentity(c), c.Params("page"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Roles godoc
// @Summary      Roles con sus páginas
// @Tags         access
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.RoleSummary]
// @Router       /api/access/roles [get]
func (h *AccessHandler) Roles(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.svc.Roles()))
}
