package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// pageChecker lo implementa *usecase.AccessService.
type pageChecker interface {
	Allowed(role entity.Role, page entity.PageID) bool
}

// RequirePage corta con 403 si el rol de la sesión no ve la página. Debe usarse DESPUÉS
// de AuthMiddleware.
func RequirePage(page entity.PageID, checker pageChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		if id.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada",
			})
		}
		if !checker.Allowed(id.Role, page) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + string(id.Role) + "' no tiene acceso a '" + string(page) + "'",
			})
		}
		return c.Next()
	}
}
