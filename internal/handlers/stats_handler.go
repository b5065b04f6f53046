package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// parseDateQuery reads a yyyy-mm-dd query param; absent or malformed
// values come back nil so the preset takes over.
func parseDateQuery(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key, "")
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	preset := c.Query("timeRange", "30")
	from := parseDateQuery(c, "fromDate")
	to := parseDateQuery(c, "toDate")

	stats, err := h.statsService.ComputeDashboard(preset, from, to)
	if err != nil {
		slog.Error("failed to compute dashboard stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute dashboard statistics",
		})
	}
	return c.JSON(stats)
}

func (h *StatsHandler) Interactions(c *fiber.Ctx) error {
	preset := c.Query("timeRange", "30")
	from := parseDateQuery(c, "fromDate")
	to := parseDateQuery(c, "toDate")

	stats, err := h.statsService.ComputeInteractions(preset, from, to)
	if err != nil {
		slog.Error("failed to compute interaction stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute interaction statistics",
		})
	}
	return c.JSON(stats)
}
