package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction events are append-only; analytics aggregates them by
// timestamp. Favorites record CreatedAt, shares record SharedAt.

type PostFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type PostShare struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID   uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SharedAt time.Time `gorm:"index" json:"shared_at"`
}

type SpotFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SpotID    uuid.UUID `gorm:"type:uuid;not null;index" json:"spot_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

type SpotShare struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SpotID   uuid.UUID `gorm:"type:uuid;not null;index" json:"spot_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SharedAt time.Time `gorm:"index" json:"shared_at"`
}
