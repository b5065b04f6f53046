package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostComment{},
		&models.TouristSpot{},
		&models.Review{},
		&models.PostFavorite{},
		&models.PostShare{},
		&models.SpotFavorite{},
		&models.SpotShare{},
		&models.Report{},
		&models.SiteSettings{},
	))
	return db
}

func makeUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		FullName: name,
		Username: name + "-" + uuid.New().String()[:8],
		Email:    uuid.New().String()[:8] + "@example.com",
		Password: "x",
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func makePost(t *testing.T, db *gorm.DB, author *models.User, title, typeOfPost string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:         uuid.New(),
		Title:      title,
		Content:    "content of " + title,
		TypeOfPost: typeOfPost,
		UserID:     author.ID,
	}
	require.NoError(t, db.Create(post).Error)
	if !createdAt.IsZero() {
		require.NoError(t, db.Model(post).Update("created_at", createdAt).Error)
		post.CreatedAt = createdAt
	}
	return post
}

func makeSpot(t *testing.T, db *gorm.DB, name string) *models.TouristSpot {
	t.Helper()
	spot := &models.TouristSpot{
		ID:           uuid.New(),
		Name:         name,
		Description:  "about " + name,
		CategoryName: "nature",
	}
	require.NoError(t, db.Create(spot).Error)
	return spot
}

func makeReport(t *testing.T, db *gorm.DB, reporter *models.User, reported *models.User, targetType models.ReportTargetType, targetID *uuid.UUID) *models.Report {
	t.Helper()
	report := &models.Report{
		ID:           uuid.New(),
		ReporterID:   reporter.ID,
		TypeOfReport: models.ReportTypeSpam,
		TargetType:   targetType,
		TargetID:     targetID,
		Reason:       "spammy",
		Status:       models.ReportStatusPending,
		ReportedAt:   time.Now().UTC(),
	}
	if reported != nil {
		report.ReportedUserID = &reported.ID
	}
	require.NoError(t, db.Create(report).Error)
	return report
}
