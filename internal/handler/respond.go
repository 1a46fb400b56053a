package handler

import (
	"errors"

	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// writeServiceError maps service-layer failures onto the HTTP contract:
// validation errors become a 400 field->messages map, permission denials 403,
// unresolved ids 404, anything else 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var verrs service.ValidationError
	if errors.As(err, &verrs) {
		return c.Status(400).JSON(verrs)
	}
	if errors.Is(err, service.ErrForbidden) {
		return c.Status(403).JSON(fiber.Map{"detail": "insufficient permission"})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}
	return c.Status(500).JSON(fiber.Map{"detail": "internal server error"})
}
