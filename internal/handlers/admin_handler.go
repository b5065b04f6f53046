package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"github.com/tourismweb/admin-backend/internal/services"
)

// AdminHandler serves the back-office pages that do not have a
// dedicated handler: users, the comment moderation view and settings.
type AdminHandler struct {
	userService     *services.UserService
	commentService  *services.CommentService
	settingsService *services.SettingsService
	siteURL         string
}

func NewAdminHandler(userService *services.UserService, commentService *services.CommentService, settingsService *services.SettingsService, siteURL string) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		commentService:  commentService,
		settingsService: settingsService,
		siteURL:         siteURL,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))
	if pageSize > 100 {
		pageSize = 100
	}

	resp, err := h.userService.ListUsers(services.UserFilter{
		Search:   c.Query("searchTerm", ""),
		Role:     c.Query("roleFilter", "all"),
		Status:   c.Query("statusFilter", "all"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) ListComments(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	if pageSize > 100 {
		pageSize = 100
	}

	resp, err := h.commentService.ListAll(page, pageSize)
	if err != nil {
		slog.Error("failed to list comments", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch comments",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get()
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}
	return c.JSON(dto.SettingsResponse{Settings: *settings, SiteURL: h.siteURL})
}

func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var req models.SiteSettings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	settings, err := h.settingsService.Save(req)
	if err != nil {
		slog.Error("failed to save settings", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save settings",
		})
	}
	return c.JSON(dto.SettingsResponse{Settings: *settings, SiteURL: h.siteURL})
}
