package handler

import (
	"go-sales-network/internal/middleware"
	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

// GetContacts handles GET /contacts/
func (h *ContactHandler) GetContacts(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	items, err := h.service.List(actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(items)
}

// CreateContact handles POST /contacts/
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req service.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "invalid JSON"})
	}

	actor := middleware.CurrentUser(c)
	resp, err := h.service.Create(actor, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(201).JSON(resp)
}

// GetContact handles GET /contacts/:id
func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	actor := middleware.CurrentUser(c)
	resp, err := h.service.GetByID(actor, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}

// UpdateContact handles PATCH /contacts/:id
func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	var req service.ContactUpdateRequest
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

// DeleteContact handles DELETE /contacts/:id
func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
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
