package handler

import (
	"strconv"

	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetPointMovement returns points earned vs spent per day for charts
// Query params: days (default 7)
func (h *DashboardHandler) GetPointMovement(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		days = 7
	}

	data, err := h.service.GetPointMovement(days)
	if err != nil {
		return respondError(c, err, "Failed to fetch point movement")
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return respondError(c, err, "Failed to fetch dashboard stats")
	}

	return c.JSON(stats)
}
