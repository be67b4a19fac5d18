package api

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/attendance/monthly/:year/:month
func (h *Handler) MonthlyReport(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "year must be an integer")
	}

	month, err := c.ParamsInt("month")
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "month must be an integer")
	}

	report, err := h.reports.Monthly(c.UserContext(), year, month)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// GET /api/dashboard/stats
func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.reports.Dashboard(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
