package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"github.com/tourismweb/admin-backend/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDashboardApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	handler := NewStatsHandler(services.NewStatsService(db))
	app := fiber.New()
	app.Get("/dashboard", handler.Dashboard)
	return app, db
}

func createPostAgedDays(t *testing.T, db *gorm.DB, author uuid.UUID, daysAgo int) {
	t.Helper()
	post := &models.Post{
		ID:         uuid.New(),
		Title:      "post",
		Content:    "content",
		TypeOfPost: models.PostTypeGuidebook,
		UserID:     author,
	}
	require.NoError(t, db.Create(post).Error)
	createdAt := time.Now().UTC().AddDate(0, 0, -daysAgo)
	require.NoError(t, db.Model(post).Update("created_at", createdAt).Error)
}

func getDashboard(t *testing.T, app *fiber.App, target string) dto.DashboardStats {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats dto.DashboardStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	return stats
}

func TestDashboardDefaultsToThirtyDays(t *testing.T) {
	app, db := newDashboardApp(t)

	author := &models.User{
		ID:       uuid.New(),
		FullName: "author",
		Username: "author",
		Email:    "author@example.com",
		Password: "x",
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, db.Create(author).Error)

	createPostAgedDays(t, db, author.ID, 20)
	createPostAgedDays(t, db, author.ID, 40)

	// No timeRange means the last 30 days, so only the fresher post
	// is counted.
	stats := getDashboard(t, app, "/dashboard")
	assert.Equal(t, int64(1), stats.TotalPosts)

	stats = getDashboard(t, app, "/dashboard?timeRange=7")
	assert.Equal(t, int64(0), stats.TotalPosts)

	stats = getDashboard(t, app, "/dashboard?timeRange=all")
	assert.Equal(t, int64(2), stats.TotalPosts)
}
