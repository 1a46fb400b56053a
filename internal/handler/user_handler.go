package handler

import (
	"go-sales-network/internal/middleware"
	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetUsers handles GET /users/ (staff only)
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(users)
}

// UpdateUser handles PATCH /users/:id (staff only; flag changes need superuser)
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	var req service.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "invalid JSON"})
	}

	actor := middleware.CurrentUser(c)
	resp, err := h.service.Update(actor, id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}

// DeleteUser handles DELETE /users/:id (superuser only)
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	actor := middleware.CurrentUser(c)
	if err := h.service.Delete(actor, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(204)
}
