package handler

import (
	"go-sales-network/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetNetworkStats handles GET /stats
func (h *DashboardHandler) GetNetworkStats(c *fiber.Ctx) error {
	stats, err := h.service.GetNetworkStats()
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(stats)
}
