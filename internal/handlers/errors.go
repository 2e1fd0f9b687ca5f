package handlers

import (
	"errors"

	"gallery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError translates a service error to its HTTP status and the uniform
// {"error": <message>} body. Anything outside the taxonomy is a 500 with the
// underlying message.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenInvalid):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
