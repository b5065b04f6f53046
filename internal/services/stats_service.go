package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService computes the admin dashboard and interaction analytics.
// Every call resolves its own window; nothing here writes to the
// database.
type StatsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db, now: time.Now}
}

// ComputeDashboard aggregates post counts, the daily series, the
// category distribution and the five most recent posts for the
// resolved window.
func (s *StatsService) ComputeDashboard(preset string, fromDate, toDate *time.Time) (*dto.DashboardStats, error) {
	w := resolveDashboardWindow(preset, fromDate, toDate, s.now())
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalPosts, err = s.countPosts(w, ""); err != nil {
		return nil, err
	}
	if stats.GuidebookPosts, err = s.countPosts(w, models.PostTypeGuidebook); err != nil {
		return nil, err
	}
	if stats.ExperiencePosts, err = s.countPosts(w, models.PostTypeExperience); err != nil {
		return nil, err
	}
	if stats.LocationPosts, err = s.countPosts(w, models.PostTypeLocation); err != nil {
		return nil, err
	}

	var created []time.Time
	if err := s.db.Model(&models.Post{}).
		Where("created_at >= ? AND created_at <= ?", w.From, w.To).
		Order("created_at ASC").
		Pluck("created_at", &created).Error; err != nil {
		return nil, err
	}
	stats.ChartLabels, stats.ChartData = dailySeries(created)

	stats.DistributionLabels, stats.DistributionData = distribution(
		[3]string{models.PostTypeGuidebook, models.PostTypeExperience, models.PostTypeLocation},
		[3]int64{stats.GuidebookPosts, stats.ExperiencePosts, stats.LocationPosts},
	)

	if err := s.db.Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentPosts).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) countPosts(w window, typeOfPost string) (int64, error) {
	query := s.db.Model(&models.Post{}).
		Where("created_at >= ? AND created_at <= ?", w.From, w.To)
	if typeOfPost != "" {
		query = query.Where("type_of_post = ?", typeOfPost)
	}
	var n int64
	err := query.Count(&n).Error
	return n, err
}

// dailySeries groups post timestamps by calendar day, keeping only
// days with at least one post, in ascending date order.
func dailySeries(created []time.Time) ([]string, []int) {
	counts := make(map[time.Time]int)
	for _, ts := range created {
		counts[dateOf(ts)]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	labels := make([]string, len(days))
	data := make([]int, len(days))
	for i, day := range days {
		labels[i] = day.Format("02/01")
		data[i] = counts[day]
	}
	return labels, data
}

// ComputeInteractions aggregates the four interaction kinds over the
// window, computes growth against the immediately preceding window of
// equal length, builds the bucketed series and ranks top posts, spots
// and users.
func (s *StatsService) ComputeInteractions(preset string, fromDate, toDate *time.Time) (*dto.InteractionStats, error) {
	w, prev := resolveInteractionWindow(preset, fromDate, toDate, s.now())
	stats := &dto.InteractionStats{}

	type eventSource struct {
		model  interface{}
		column string
		total  *int64
		growth *float64
		series *[]int
	}
	sources := []eventSource{
		{&models.PostFavorite{}, "created_at", &stats.TotalPostFavorites, &stats.PostFavoritesGrowth, &stats.PostFavoritesSeries},
		{&models.PostShare{}, "shared_at", &stats.TotalPostShares, &stats.PostSharesGrowth, &stats.PostSharesSeries},
		{&models.SpotFavorite{}, "created_at", &stats.TotalSpotFavorites, &stats.SpotFavoritesGrowth, &stats.SpotFavoritesSeries},
		{&models.SpotShare{}, "shared_at", &stats.TotalSpotShares, &stats.SpotSharesGrowth, &stats.SpotSharesSeries},
	}

	buckets := buildBuckets(w.From, w.To)
	stats.DateLabels = make([]string, len(buckets))
	for i, b := range buckets {
		stats.DateLabels[i] = b.Label
	}

	for _, src := range sources {
		current, err := s.countEvents(src.model, src.column, w)
		if err != nil {
			return nil, err
		}
		previous, err := s.countEventsStrict(src.model, src.column, prev)
		if err != nil {
			return nil, err
		}
		*src.total = current
		*src.growth = growth(previous, current)

		times, err := s.eventTimes(src.model, src.column, buckets)
		if err != nil {
			return nil, err
		}
		*src.series = countByBucket(buckets, times)
	}

	var err error
	if stats.TopPosts, err = s.topPosts(w); err != nil {
		return nil, err
	}
	if stats.TopSpots, err = s.topSpots(w); err != nil {
		return nil, err
	}
	if stats.TopUsers, err = s.topUsers(w); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) countEvents(model interface{}, column string, w window) (int64, error) {
	var n int64
	err := s.db.Model(model).
		Where(fmt.Sprintf("%s >= ? AND %s <= ?", column, column), w.From, w.To).
		Count(&n).Error
	return n, err
}

// countEventsStrict uses a strict upper bound; comparison windows are
// half-open on the right.
func (s *StatsService) countEventsStrict(model interface{}, column string, w window) (int64, error) {
	var n int64
	err := s.db.Model(model).
		Where(fmt.Sprintf("%s >= ? AND %s < ?", column, column), w.From, w.To).
		Count(&n).Error
	return n, err
}

func (s *StatsService) eventTimes(model interface{}, column string, buckets []bucket) ([]time.Time, error) {
	if len(buckets) == 0 {
		return nil, nil
	}
	var times []time.Time
	err := s.db.Model(model).
		Where(fmt.Sprintf("%s >= ? AND %s < ?", column, column), buckets[0].Start, buckets[len(buckets)-1].End).
		Pluck(column, &times).Error
	return times, err
}

type refCount struct {
	RefID uuid.UUID `gorm:"column:ref_id"`
	N     int64     `gorm:"column:n"`
}

func (s *StatsService) groupCounts(model interface{}, refColumn, timeColumn string, w window) (map[uuid.UUID]int64, error) {
	var rows []refCount
	err := s.db.Model(model).
		Select(fmt.Sprintf("%s AS ref_id, COUNT(*) AS n", refColumn)).
		Where(fmt.Sprintf("%s >= ? AND %s <= ?", timeColumn, timeColumn), w.From, w.To).
		Group(refColumn).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.RefID] = r.N
	}
	return counts, nil
}

// Top rankings sort by summed interactions, descending. Ties keep the
// base ordering (creation time ascending, then id), which makes the
// ranking deterministic.

func (s *StatsService) topPosts(w window) ([]dto.TopPost, error) {
	var posts []models.Post
	if err := s.db.Order("created_at ASC, id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	favorites, err := s.groupCounts(&models.PostFavorite{}, "post_id", "created_at", w)
	if err != nil {
		return nil, err
	}
	shares, err := s.groupCounts(&models.PostShare{}, "post_id", "shared_at", w)
	if err != nil {
		return nil, err
	}

	top := make([]dto.TopPost, len(posts))
	for i, p := range posts {
		top[i] = dto.TopPost{
			PostID:     p.ID,
			Title:      p.Title,
			TypeOfPost: p.TypeOfPost,
			Favorites:  favorites[p.ID],
			Shares:     shares[p.ID],
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Favorites+top[i].Shares > top[j].Favorites+top[j].Shares
	})
	return truncateTop(top), nil
}

func (s *StatsService) topSpots(w window) ([]dto.TopSpot, error) {
	var spots []models.TouristSpot
	if err := s.db.Order("created_at ASC, id ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	favorites, err := s.groupCounts(&models.SpotFavorite{}, "spot_id", "created_at", w)
	if err != nil {
		return nil, err
	}
	shares, err := s.groupCounts(&models.SpotShare{}, "spot_id", "shared_at", w)
	if err != nil {
		return nil, err
	}

	top := make([]dto.TopSpot, len(spots))
	for i, sp := range spots {
		top[i] = dto.TopSpot{
			SpotID:       sp.ID,
			Name:         sp.Name,
			CategoryName: sp.CategoryName,
			Favorites:    favorites[sp.ID],
			Shares:       shares[sp.ID],
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Favorites+top[i].Shares > top[j].Favorites+top[j].Shares
	})
	return truncateTop(top), nil
}

func (s *StatsService) topUsers(w window) ([]dto.TopUser, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	postFavorites, err := s.groupCounts(&models.PostFavorite{}, "user_id", "created_at", w)
	if err != nil {
		return nil, err
	}
	postShares, err := s.groupCounts(&models.PostShare{}, "user_id", "shared_at", w)
	if err != nil {
		return nil, err
	}
	spotFavorites, err := s.groupCounts(&models.SpotFavorite{}, "user_id", "created_at", w)
	if err != nil {
		return nil, err
	}
	spotShares, err := s.groupCounts(&models.SpotShare{}, "user_id", "shared_at", w)
	if err != nil {
		return nil, err
	}

	top := make([]dto.TopUser, len(users))
	for i, u := range users {
		top[i] = dto.TopUser{
			UserID:        u.ID,
			FullName:      u.FullName,
			Email:         u.Email,
			AvatarURL:     u.AvatarURL,
			PostFavorites: postFavorites[u.ID],
			PostShares:    postShares[u.ID],
			SpotFavorites: spotFavorites[u.ID],
			SpotShares:    spotShares[u.ID],
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		ti := top[i].PostFavorites + top[i].PostShares + top[i].SpotFavorites + top[i].SpotShares
		tj := top[j].PostFavorites + top[j].PostShares + top[j].SpotFavorites + top[j].SpotShares
		return ti > tj
	})
	return truncateTop(top), nil
}

func truncateTop[T any](items []T) []T {
	if len(items) > 5 {
		return items[:5]
	}
	return items
}
