package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	SpotID  uuid.UUID `json:"spot_id" form:"spotId"`
	Rating  int       `json:"rating" form:"rating"`
	Comment string    `json:"comment" form:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	SpotID     uuid.UUID `json:"spot_id"`
	SpotName   string    `json:"spot_name,omitempty"`
	UserID     uuid.UUID `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Total      int64            `json:"total"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// SpotReviewsResponse is the public per-spot review listing, with the
// aggregate rating shown above the list.
type SpotReviewsResponse struct {
	SpotID        uuid.UUID        `json:"spot_id"`
	SpotName      string           `json:"spot_name"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
	Total         int64            `json:"total"`
	PageNumber    int              `json:"page_number"`
	PageSize      int              `json:"page_size"`
	TotalPages    int              `json:"total_pages"`
}
