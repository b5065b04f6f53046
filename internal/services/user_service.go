package services

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserFilter narrows the admin user listing. Empty or "all" values
// disable a filter.
type UserFilter struct {
	Search   string
	Role     string
	Status   string
	Page     int
	PageSize int
}

func (s *UserService) ListUsers(f UserFilter) (*dto.UserListResponse, error) {
	if f.PageSize <= 0 {
		f.PageSize = 10
	}

	query := s.db.Model(&models.User{})
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(username) LIKE ?",
			pattern, pattern, pattern)
	}
	if filterActive(f.Role) {
		query = query.Where("role = ?", strings.ToLower(strings.TrimSpace(f.Role)))
	}
	if filterActive(f.Status) {
		query = query.Where("LOWER(status) = ?", strings.ToLower(strings.TrimSpace(f.Status)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.PageSize)))
	page := clampPage(f.Page, totalPages)

	var users []models.User
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]dto.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUser(&u))
	}
	return &dto.UserListResponse{
		Users:      out,
		Total:      total,
		PageNumber: page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func toAdminUser(u *models.User) dto.AdminUser {
	return dto.AdminUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
