package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB, now time.Time) *StatsService {
	svc := NewStatsService(db)
	svc.now = func() time.Time { return now }
	return svc
}

func addPostFavorite(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, at time.Time) {
	t.Helper()
	fav := &models.PostFavorite{ID: uuid.New(), PostID: post.ID, UserID: user.ID}
	require.NoError(t, db.Create(fav).Error)
	require.NoError(t, db.Model(fav).Update("created_at", at).Error)
}

func addPostShare(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, at time.Time) {
	t.Helper()
	share := &models.PostShare{ID: uuid.New(), PostID: post.ID, UserID: user.ID, SharedAt: at}
	require.NoError(t, db.Create(share).Error)
}

func addSpotFavorite(t *testing.T, db *gorm.DB, spot *models.TouristSpot, user *models.User, at time.Time) {
	t.Helper()
	fav := &models.SpotFavorite{ID: uuid.New(), SpotID: spot.ID, UserID: user.ID}
	require.NoError(t, db.Create(fav).Error)
	require.NoError(t, db.Model(fav).Update("created_at", at).Error)
}

func TestComputeDashboard(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(db, now)

	author := makeUser(t, db, "Author")
	makePost(t, db, author, "G1", models.PostTypeGuidebook, now.AddDate(0, 0, -1))
	makePost(t, db, author, "G2", models.PostTypeGuidebook, now.AddDate(0, 0, -1))
	makePost(t, db, author, "E1", models.PostTypeExperience, now.AddDate(0, 0, -2))
	makePost(t, db, author, "Old", models.PostTypeLocation, now.AddDate(0, 0, -40))

	stats, err := svc.ComputeDashboard("7", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalPosts, "the 40-day-old post is outside the window")
	assert.Equal(t, int64(2), stats.GuidebookPosts)
	assert.Equal(t, int64(1), stats.ExperiencePosts)
	assert.Equal(t, int64(0), stats.LocationPosts)

	assert.Equal(t, []string{"08/03", "09/03"}, stats.ChartLabels)
	assert.Equal(t, []int{1, 2}, stats.ChartData)

	assert.Equal(t, []string{models.PostTypeGuidebook, models.PostTypeExperience}, stats.DistributionLabels)
	assert.Equal(t, []int{67, 33}, stats.DistributionData)

	require.Len(t, stats.RecentPosts, 4)
	assert.Equal(t, "Author", stats.RecentPosts[0].User.FullName)
}

func TestComputeDashboardEmpty(t *testing.T) {
	db := testDB(t)
	svc := newStatsService(db, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	stats, err := svc.ComputeDashboard("all", nil, nil)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalPosts)
	assert.Empty(t, stats.ChartLabels)
	assert.Nil(t, stats.DistributionLabels, "no distribution without posts")
	assert.Empty(t, stats.RecentPosts)
}

func TestComputeInteractionsTotalsAndGrowth(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(db, now)

	user := makeUser(t, db, "Fan")
	post := makePost(t, db, user, "P", models.PostTypeGuidebook, time.Time{})
	spot := makeSpot(t, db, "Beach")

	// Current 30-day window: 3 favorites. Previous window: 1.
	addPostFavorite(t, db, post, user, now.AddDate(0, 0, -5))
	addPostFavorite(t, db, post, user, now.AddDate(0, 0, -10))
	addPostFavorite(t, db, post, user, now.AddDate(0, 0, -15))
	addPostFavorite(t, db, post, user, now.AddDate(0, 0, -45))

	// Shares only in the current window.
	addPostShare(t, db, post, user, now.AddDate(0, 0, -3))
	addSpotFavorite(t, db, spot, user, now.AddDate(0, 0, -7))

	stats, err := svc.ComputeInteractions("30", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalPostFavorites)
	assert.Equal(t, int64(1), stats.TotalPostShares)
	assert.Equal(t, int64(1), stats.TotalSpotFavorites)
	assert.Equal(t, int64(0), stats.TotalSpotShares)

	assert.Equal(t, float64(200), stats.PostFavoritesGrowth, "3 vs 1 in the previous window")
	assert.Equal(t, float64(100), stats.PostSharesGrowth, "empty previous window reads as +100%")
	assert.Equal(t, float64(100), stats.SpotSharesGrowth)
}

func TestComputeInteractionsSeries(t *testing.T) {
	db := testDB(t)
	svc := NewStatsService(db)

	user := makeUser(t, db, "Fan")
	post := makePost(t, db, user, "P", models.PostTypeGuidebook, time.Time{})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	addPostFavorite(t, db, post, user, from.Add(3*time.Hour))
	addPostFavorite(t, db, post, user, from.AddDate(0, 0, 2))
	addPostFavorite(t, db, post, user, from.AddDate(0, 0, 2).Add(8*time.Hour))

	stats, err := svc.ComputeInteractions("", &from, &to)
	require.NoError(t, err)

	assert.Equal(t, []string{"01/01", "02/01", "03/01", "04/01", "05/01"}, stats.DateLabels)
	assert.Equal(t, []int{1, 0, 2, 0, 0}, stats.PostFavoritesSeries)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, stats.PostSharesSeries)
}

func TestComputeInteractionsTopRankings(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	svc := newStatsService(db, now)

	heavy := makeUser(t, db, "Heavy")
	light := makeUser(t, db, "Light")

	var posts []*models.Post
	for i := 0; i < 7; i++ {
		posts = append(posts, makePost(t, db, heavy, "P", models.PostTypeGuidebook, now.AddDate(0, 0, -20+i)))
	}

	// posts[6] gets the most interactions, posts[5] second.
	for i := 0; i < 4; i++ {
		addPostFavorite(t, db, posts[6], heavy, now.AddDate(0, 0, -i-1))
	}
	addPostShare(t, db, posts[6], heavy, now.AddDate(0, 0, -2))
	addPostFavorite(t, db, posts[5], light, now.AddDate(0, 0, -1))
	addPostShare(t, db, posts[5], light, now.AddDate(0, 0, -1))

	stats, err := svc.ComputeInteractions("30", nil, nil)
	require.NoError(t, err)

	require.Len(t, stats.TopPosts, 5, "rankings cap at five entries")
	assert.Equal(t, posts[6].ID, stats.TopPosts[0].PostID)
	assert.Equal(t, int64(4), stats.TopPosts[0].Favorites)
	assert.Equal(t, int64(1), stats.TopPosts[0].Shares)
	assert.Equal(t, posts[5].ID, stats.TopPosts[1].PostID)

	// Zero-interaction ties keep creation order.
	assert.Equal(t, posts[0].ID, stats.TopPosts[2].PostID)
	assert.Equal(t, posts[1].ID, stats.TopPosts[3].PostID)

	require.NotEmpty(t, stats.TopUsers)
	assert.Equal(t, heavy.ID, stats.TopUsers[0].UserID)
	assert.Equal(t, int64(4), stats.TopUsers[0].PostFavorites)
	assert.Equal(t, int64(1), stats.TopUsers[0].PostShares)
}
