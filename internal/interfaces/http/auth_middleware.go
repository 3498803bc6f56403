package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
)

// LocalIdentity clave de c.Locals con la session.Identity del usuario.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals y en
// c.UserContext() para los casos de uso y el cliente remoto.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := auth.IdentityFromToken(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentity, id)
		c.SetUserContext(session.WithIdentity(c.UserContext(), id))
		return c.Next()
	}
}

// GetIdentity identidad cargada por AuthMiddleware; vacía si no pasó por él.
func GetIdentity(c *fiber.Ctx) session.Identity {
	id, _ := c.Locals(LocalIdentity).(session.Identity)
	return id
}
