package models

import (
	"time"

	"github.com/google/uuid"
)

// TouristSpot is a place users review, favorite and share.
type TouristSpot struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	CategoryName string    `gorm:"size:100" json:"category_name"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Review is a rated comment on a tourist spot, optionally with an image.
type Review struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SpotID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"spot_id"`
	Spot      TouristSpot `gorm:"foreignKey:SpotID" json:"spot,omitempty"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int         `gorm:"not null" json:"rating"`
	Comment   string      `gorm:"type:text" json:"comment"`
	ImageURL  string      `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
