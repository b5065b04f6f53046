package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/middleware"
	"github.com/tourismweb/admin-backend/internal/models"
	"github.com/tourismweb/admin-backend/internal/services"
	"github.com/tourismweb/admin-backend/internal/storage"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// reviewUpload pulls the optional "imageFile" part out of a multipart
// form. A request without one returns (nil, nil, nil).
func reviewUpload(c *fiber.Ctx) (*services.ReviewUpload, func(), error) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		return nil, nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &services.ReviewUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   f,
	}
	return upload, func() { f.Close() }, nil
}

func imageErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, storage.ErrImageTooLarge):
		return fiber.StatusRequestEntityTooLarge, true
	case errors.Is(err, storage.ErrImageBadType):
		return fiber.StatusUnsupportedMediaType, true
	}
	return 0, false
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	upload, closeUpload, err := reviewUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image upload",
		})
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	review, err := h.reviewService.Create(userID, req, upload)
	if err != nil {
		if status, ok := imageErrorStatus(err); ok {
			return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrSpotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Tourist spot not found",
			})
		}
		if errors.Is(err, services.ErrBadRating) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to create review", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	upload, closeUpload, err := reviewUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image upload",
		})
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	review, err := h.reviewService.Update(reviewID, userID, req, upload)
	if err != nil {
		if status, ok := imageErrorStatus(err); ok {
			return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Review not found",
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You can only edit your own reviews",
			})
		case errors.Is(err, services.ErrBadRating):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to update review", "error", err, "review_id", reviewID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update review",
		})
	}

	return c.JSON(review)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	isAdmin := middleware.GetUserRole(c) == models.RoleAdmin
	if err := h.reviewService.Delete(reviewID, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Review not found",
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You can only delete your own reviews",
			})
		}
		slog.Error("failed to delete review", "error", err, "review_id", reviewID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete review",
		})
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid review ID",
		})
	}

	review, err := h.reviewService.Get(reviewID)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Review not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch review",
		})
	}

	return c.JSON(review)
}

func (h *ReviewHandler) ListSpotReviews(c *fiber.Ctx) error {
	spotID, err := uuid.Parse(c.Query("spotId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid spot ID",
		})
	}

	filter := reviewFilterFromQuery(c)
	resp, err := h.reviewService.ListSpotReviews(spotID, filter)
	if err != nil {
		if errors.Is(err, services.ErrSpotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Tourist spot not found",
			})
		}
		slog.Error("failed to list spot reviews", "error", err, "spot_id", spotID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reviews",
		})
	}

	return c.JSON(resp)
}

func (h *ReviewHandler) ListAll(c *fiber.Ctx) error {
	resp, err := h.reviewService.ListAll(reviewFilterFromQuery(c))
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reviews",
		})
	}
	return c.JSON(resp)
}

func reviewFilterFromQuery(c *fiber.Ctx) services.ReviewFilter {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))
	if pageSize > 100 {
		pageSize = 100
	}
	return services.ReviewFilter{
		Filter:   c.Query("filterBy", ""),
		Sort:     c.Query("sortBy", "newest"),
		Page:     page,
		PageSize: pageSize,
	}
}
