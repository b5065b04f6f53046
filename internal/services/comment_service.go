package services

import (
	"math"
	"sort"

	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

// CommentService backs the admin moderation page that shows post
// comments and spot reviews side by side.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListAll merges post comments and reviews into one newest-first list.
// Both tables are small relative to the admin page size, so the merge
// happens in memory rather than through a UNION.
func (s *CommentService) ListAll(page, pageSize int) (*dto.CommentListResponse, error) {
	if pageSize <= 0 {
		pageSize = 20
	}

	var comments []models.PostComment
	if err := s.db.Preload("User").Preload("Post").
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("User").Preload("Spot").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	merged := make([]dto.AdminComment, 0, len(comments)+len(reviews))
	for _, c := range comments {
		merged = append(merged, dto.AdminComment{
			ID:           c.ID,
			Kind:         "comment",
			Content:      c.Content,
			AuthorID:     c.UserID,
			AuthorName:   c.User.DisplayName(),
			AuthorEmail:  c.User.Email,
			AuthorAvatar: avatarOrDefault(c.User.AvatarURL),
			ParentID:     c.PostID,
			Parent:       c.Post.Title,
			ImageURL:     c.ImageURL,
			CreatedAt:    c.CreatedAt,
		})
	}
	for _, r := range reviews {
		merged = append(merged, dto.AdminComment{
			ID:           r.ID,
			Kind:         "review",
			Content:      r.Comment,
			AuthorID:     r.UserID,
			AuthorName:   r.User.DisplayName(),
			AuthorEmail:  r.User.Email,
			AuthorAvatar: avatarOrDefault(r.User.AvatarURL),
			ParentID:     r.SpotID,
			Parent:       r.Spot.Name,
			Rating:       r.Rating,
			ImageURL:     r.ImageURL,
			CreatedAt:    r.CreatedAt,
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := len(merged)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	page = clampPage(page, totalPages)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &dto.CommentListResponse{
		Comments:   merged[start:end],
		Total:      total,
		PageNumber: page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
