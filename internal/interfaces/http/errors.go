package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
)

// errorMapping código HTTP y código de error para un sentinel de dominio.
type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrPartialUpdate envuelve además la causa original.
var errorMappings = []errorMapping{
	{domain.ErrPartialUpdate, fiber.StatusBadGateway, "PARTIAL_UPDATE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrAdminRegistration, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnknownRole, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrBackendUnavailable, fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"},
	{domain.ErrNoSession, fiber.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"},
}

// writeError traduce err a dto.ErrorResponse. Los errores no reconocidos se registran y
// responden 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("fallo del backend")
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{
				Code:    m.code,
				Message: err.Error(),
				Refresh: m.status == fiber.StatusNotFound,
			})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
