package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/models"
)

type AdminUser struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users      []AdminUser `json:"users"`
	Total      int64       `json:"total"`
	PageNumber int         `json:"page_number"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// AdminComment is one row in the combined moderation view of post
// comments and spot reviews.
type AdminComment struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"` // "comment" or "review"
	Content      string    `json:"content"`
	AuthorID     uuid.UUID `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	AuthorAvatar string    `json:"author_avatar"`
	ParentID     uuid.UUID `json:"parent_id"`
	Parent       string    `json:"parent"` // post title or spot name
	Rating       int       `json:"rating,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SettingsResponse wraps the stored settings with the read-only site
// URL, which lives in server config rather than the database.
type SettingsResponse struct {
	Settings models.SiteSettings `json:"settings"`
	SiteURL  string              `json:"site_url"`
}

type CommentListResponse struct {
	Comments   []AdminComment `json:"comments"`
	Total      int            `json:"total"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
