package handler

import (
	"go-sales-network/internal/middleware"
	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts handles GET /products/
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	items, err := h.service.List(actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(items)
}

// CreateProduct handles POST /products/
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
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

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
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

// UpdateProduct handles PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	var req service.ProductUpdateRequest
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

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
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
