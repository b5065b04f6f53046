package services

import (
	"errors"

	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the singleton settings record, seeding the defaults on
// first access so the admin page never renders empty.
func (s *SettingsService) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSiteSettings()
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save overwrites the singleton with the submitted values, keeping its
// identity stable across updates.
func (s *SettingsService) Save(updated models.SiteSettings) (*models.SiteSettings, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
