package handler

import (
	"go-retail-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the overview counters
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}
