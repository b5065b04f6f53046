package services

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrSpotNotFound   = errors.New("tourist spot not found")
	ErrNotOwner       = errors.New("review belongs to another user")
	ErrBadRating      = errors.New("rating must be between 1 and 5")
)

// ReviewImageStore is what the review service needs from image
// storage. Satisfied by storage.ImageStore.
type ReviewImageStore interface {
	Validate(filename string, size int64) error
	Save(filename string, size int64, r io.Reader) (string, error)
	Delete(url string) error
}

type ReviewService struct {
	db     *gorm.DB
	images ReviewImageStore
}

func NewReviewService(db *gorm.DB, images ReviewImageStore) *ReviewService {
	return &ReviewService{db: db, images: images}
}

// ReviewUpload carries an optional image picked up from a multipart
// form. A nil upload means no image change.
type ReviewUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

func (s *ReviewService) Create(userID uuid.UUID, req dto.CreateReviewRequest, upload *ReviewUpload) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrBadRating
	}
	var spot models.TouristSpot
	if err := s.db.First(&spot, "id = ?", req.SpotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	// Validate before any disk write so a bad upload never leaves a
	// stray file behind.
	imageURL := ""
	if upload != nil {
		if err := s.images.Validate(upload.Filename, upload.Size); err != nil {
			return nil, err
		}
		url, err := s.images.Save(upload.Filename, upload.Size, upload.Reader)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	review := models.Review{
		ID:       uuid.New(),
		SpotID:   req.SpotID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		ImageURL: imageURL,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	review.Spot = spot
	return &review, nil
}

func (s *ReviewService) Update(reviewID, userID uuid.UUID, req dto.UpdateReviewRequest, upload *ReviewUpload) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrBadRating
	}
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotOwner
	}

	oldImage := review.ImageURL
	if upload != nil {
		url, err := s.images.Save(upload.Filename, upload.Size, upload.Reader)
		if err != nil {
			return nil, err
		}
		review.ImageURL = url
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}

	// Placeholder assets ship with the site and are shared; only
	// user-uploaded images get cleaned up on replacement.
	if upload != nil && oldImage != "" && !strings.Contains(oldImage, "default-") {
		if err := s.images.Delete(oldImage); err != nil {
			slog.Warn("failed to remove replaced review image", "url", oldImage, "error", err)
		}
	}
	return &review, nil
}

func (s *ReviewService) Delete(reviewID, userID uuid.UUID, isAdmin bool) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if !isAdmin && review.UserID != userID {
		return ErrNotOwner
	}

	if review.ImageURL != "" && !strings.Contains(review.ImageURL, "default-") {
		if err := s.images.Delete(review.ImageURL); err != nil {
			slog.Warn("failed to remove review image", "url", review.ImageURL, "error", err)
		}
	}
	return s.db.Delete(&review).Error
}

func (s *ReviewService) Get(reviewID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.Preload("User").Preload("Spot").First(&review, "id = ?", reviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ReviewFilter narrows and orders a review listing.
type ReviewFilter struct {
	Filter   string // "", "with-photos" or a rating "1".."5"
	Sort     string // newest (default), oldest, highest, lowest
	Page     int
	PageSize int
}

func applyReviewFilter(query *gorm.DB, f ReviewFilter) *gorm.DB {
	switch strings.ToLower(strings.TrimSpace(f.Filter)) {
	case "", "all":
	case "with-photos":
		query = query.Where("image_url <> ''")
	case "1", "2", "3", "4", "5":
		query = query.Where("rating = ?", f.Filter)
	}
	switch strings.ToLower(strings.TrimSpace(f.Sort)) {
	case "oldest":
		query = query.Order("created_at ASC")
	case "highest":
		query = query.Order("rating DESC").Order("created_at DESC")
	case "lowest":
		query = query.Order("rating ASC").Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}
	return query
}

// ListSpotReviews pages through one spot's reviews with the aggregate
// rating. An out-of-range page clamps to the nearest valid one.
func (s *ReviewService) ListSpotReviews(spotID uuid.UUID, f ReviewFilter) (*dto.SpotReviewsResponse, error) {
	var spot models.TouristSpot
	if err := s.db.First(&spot, "id = ?", spotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	if f.PageSize <= 0 {
		f.PageSize = 10
	}

	base := applyReviewFilter(s.db.Model(&models.Review{}).Where("spot_id = ?", spotID), f)
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.PageSize)))
	page := clampPage(f.Page, totalPages)

	var reviews []models.Review
	if err := base.Preload("User").
		Offset((page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	var avg float64
	var count int64
	row := s.db.Model(&models.Review{}).
		Where("spot_id = ?", spotID).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Row()
	if err := row.Scan(&avg, &count); err != nil {
		return nil, err
	}

	return &dto.SpotReviewsResponse{
		SpotID:        spot.ID,
		SpotName:      spot.Name,
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   count,
		Reviews:       toReviewResponses(reviews),
		Total:         total,
		PageNumber:    page,
		PageSize:      f.PageSize,
		TotalPages:    totalPages,
	}, nil
}

// ListAll is the admin-side listing across every spot.
func (s *ReviewService) ListAll(f ReviewFilter) (*dto.ReviewListResponse, error) {
	if f.PageSize <= 0 {
		f.PageSize = 10
	}

	base := applyReviewFilter(s.db.Model(&models.Review{}), f)
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.PageSize)))
	page := clampPage(f.Page, totalPages)

	var reviews []models.Review
	if err := base.Preload("User").Preload("Spot").
		Offset((page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews:    toReviewResponses(reviews),
		Total:      total,
		PageNumber: page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}, nil
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

func toReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, dto.ReviewResponse{
			ID:         r.ID,
			SpotID:     r.SpotID,
			SpotName:   r.Spot.Name,
			UserID:     r.UserID,
			UserName:   r.User.DisplayName(),
			UserAvatar: avatarOrDefault(r.User.AvatarURL),
			Rating:     r.Rating,
			Comment:    r.Comment,
			ImageURL:   r.ImageURL,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return out
}
