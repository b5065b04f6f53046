package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User status values. Status moves to Banned only through an explicit
// admin sanction (services.ModerationService).
const (
	UserStatusActive = "Active"
	UserStatusBanned = "Banned"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Username  string    `gorm:"size:100;uniqueIndex" json:"username"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	AvatarURL string    `gorm:"size:500" json:"avatar_url"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	Status    string    `gorm:"size:20;default:'Active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName prefers the full name, falling back to the username.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.FullName) != "" {
		return u.FullName
	}
	return u.Username
}
