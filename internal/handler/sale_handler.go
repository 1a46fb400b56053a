package handler

import (
	"go-sales-network/internal/middleware"
	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// GetSales handles GET /sales/ with an optional ?search= filter on the
// contact's city or country.
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	items, err := h.service.List(actor, c.Query("search"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(items)
}

// CreateSale handles POST /sales/create/
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.SaleRequest
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

// GetSale handles GET /sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
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

// UpdateSale handles PATCH /sales/update/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"detail": "not found"})
	}

	var req service.SaleUpdateRequest
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

// DeleteSale handles DELETE /sales/delete/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
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
