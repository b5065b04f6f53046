package dto

import (
	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/models"
)

// DashboardStats is the payload behind the admin dashboard.
type DashboardStats struct {
	TotalPosts      int64 `json:"total_posts"`
	GuidebookPosts  int64 `json:"guidebook_posts"`
	ExperiencePosts int64 `json:"experience_posts"`
	LocationPosts   int64 `json:"location_posts"`

	ChartLabels []string `json:"chart_labels"`
	ChartData   []int    `json:"chart_data"`

	DistributionLabels []string `json:"distribution_labels"`
	DistributionData   []int    `json:"distribution_data"`

	RecentPosts []models.Post `json:"recent_posts"`
}

// InteractionStats aggregates the four interaction kinds over a window
// plus growth against the preceding window of equal length.
type InteractionStats struct {
	TotalPostFavorites int64 `json:"total_post_favorites"`
	TotalPostShares    int64 `json:"total_post_shares"`
	TotalSpotFavorites int64 `json:"total_spot_favorites"`
	TotalSpotShares    int64 `json:"total_spot_shares"`

	PostFavoritesGrowth float64 `json:"post_favorites_growth"`
	PostSharesGrowth    float64 `json:"post_shares_growth"`
	SpotFavoritesGrowth float64 `json:"spot_favorites_growth"`
	SpotSharesGrowth    float64 `json:"spot_shares_growth"`

	DateLabels          []string `json:"date_labels"`
	PostFavoritesSeries []int    `json:"post_favorites_series"`
	PostSharesSeries    []int    `json:"post_shares_series"`
	SpotFavoritesSeries []int    `json:"spot_favorites_series"`
	SpotSharesSeries    []int    `json:"spot_shares_series"`

	TopPosts []TopPost `json:"top_posts"`
	TopSpots []TopSpot `json:"top_spots"`
	TopUsers []TopUser `json:"top_users"`
}

type TopPost struct {
	PostID     uuid.UUID `json:"post_id"`
	Title      string    `json:"title"`
	TypeOfPost string    `json:"type_of_post"`
	Favorites  int64     `json:"favorites"`
	Shares     int64     `json:"shares"`
}

type TopSpot struct {
	SpotID       uuid.UUID `json:"spot_id"`
	Name         string    `json:"name"`
	CategoryName string    `json:"category_name"`
	Favorites    int64     `json:"favorites"`
	Shares       int64     `json:"shares"`
}

type TopUser struct {
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	AvatarURL     string    `json:"avatar_url"`
	PostFavorites int64     `json:"post_favorites"`
	PostShares    int64     `json:"post_shares"`
	SpotFavorites int64     `json:"spot_favorites"`
	SpotShares    int64     `json:"spot_shares"`
}
