package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings is the single typed settings record for the admin panel.
// The site URL deliberately lives in server config, not here.
type SiteSettings struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SiteName               string    `gorm:"size:255" json:"site_name"`
	SiteDescription        string    `gorm:"size:1000" json:"site_description"`
	Language               string    `gorm:"size:10" json:"language"`
	Timezone               string    `gorm:"size:100" json:"timezone"`
	DateFormat             string    `gorm:"size:50" json:"date_format"`
	PostsPerPage           int       `json:"posts_per_page"`
	CommentsPerPage        int       `json:"comments_per_page"`
	AutoApproveComments    bool      `json:"auto_approve_comments"`
	RequireCommentApproval bool      `json:"require_comment_approval"`
	RequireEmailVerify     bool      `json:"require_email_verification"`
	NotifyOnNewComment     bool      `json:"notify_on_new_comment"`
	NotifyOnNewUser        bool      `json:"notify_on_new_user"`
	Theme                  string    `gorm:"size:20" json:"theme"`
	PrimaryColor           string    `gorm:"size:20" json:"primary_color"`
	FontFamily             string    `gorm:"size:100" json:"font_family"`
	SystemVersion          string    `gorm:"size:20" json:"system_version"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the record seeded on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                     uuid.New(),
		SiteName:               "Tourism Web",
		SiteDescription:        "Discover places worth travelling to.",
		Language:               "vi",
		Timezone:               "Asia/Ho_Chi_Minh",
		DateFormat:             "dd/MM/yyyy",
		PostsPerPage:           10,
		CommentsPerPage:        10,
		AutoApproveComments:    true,
		RequireCommentApproval: true,
		RequireEmailVerify:     true,
		NotifyOnNewComment:     true,
		NotifyOnNewUser:        false,
		Theme:                  "system",
		PrimaryColor:           "#3B82F6",
		FontFamily:             "Roboto, sans-serif",
		SystemVersion:          "1.0.0",
	}
}
