package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/events"
)

// EventsUpgrade exige upgrade websocket y un token válido en ?token= (los navegadores no
// envían Authorization en el handshake).
func EventsUpgrade(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}
		id, err := auth.IdentityFromToken(jwtSecret, c.Query("token"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// EventsStream registra la conexión en el hub hasta que el cliente cierra. Cada conexión
// recibe solo los eventos que su identidad puede ver.
func EventsStream(hub *events.Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		id, _ := c.Locals(LocalIdentity).(session.Identity)
		if !hub.Join(c, id) {
			return
		}
		defer hub.Leave(c)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}
