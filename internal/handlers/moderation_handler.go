package handlers

import (
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/middleware"
	"github.com/tourismweb/admin-backend/internal/services"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))
	if pageSize > 100 {
		pageSize = 100
	}

	filter := services.ReportFilter{
		Status:     c.Query("statusFilter", "all"),
		Type:       c.Query("typeFilter", "all"),
		TargetType: c.Query("targetTypeFilter", "all"),
		Search:     c.Query("searchTerm", ""),
		Page:       page,
		PageSize:   pageSize,
	}

	reports, total, err := h.moderationService.ListReports(filter)
	if err != nil {
		slog.Error("failed to list reports", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	return c.JSON(dto.ReportListResponse{
		Reports:    reports,
		Total:      total,
		PageNumber: filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	})
}

func (h *ModerationHandler) GetReportDetails(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	details, err := h.moderationService.GetReportDetails(reportID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		slog.Error("failed to load report details", "error", err, "report_id", reportID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load report",
		})
	}

	return c.JSON(details)
}

func (h *ModerationHandler) ProcessReport(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ProcessReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	outcome, err := h.moderationService.ProcessReport(reportID, req.NewStatus, req.AdminAction, req.AdminNotes, adminID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Report not found",
			})
		}
		slog.Error("failed to process report", "error", err,
			"report_id", reportID, "admin_id", adminID.String(), "action", req.AdminAction)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process report",
		})
	}

	slog.Info("report processed",
		"report_id", outcome.ReportID,
		"admin_id", adminID.String(),
		"action", req.AdminAction,
		"status", outcome.FinalStatus,
		"content_deleted", outcome.ContentDeleted,
		"user_banned", outcome.UserBanned)
	return c.JSON(outcome)
}
