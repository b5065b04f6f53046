package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourismweb/admin-backend/internal/database"
	"github.com/tourismweb/admin-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:   "ok",
		Database: dbStatus,
	})
}
