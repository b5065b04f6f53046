package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/dto"
	"github.com/tourismweb/admin-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReportNotFound = errors.New("report not found")

const defaultAvatar = "/images/default-avatar.png"

// ModerationService drives the report review workflow: listing,
// detail resolution and processing with content/user side effects.
type ModerationService struct {
	db      *gorm.DB
	siteURL string
}

func NewModerationService(db *gorm.DB, siteURL string) *ModerationService {
	return &ModerationService{db: db, siteURL: strings.TrimRight(siteURL, "/")}
}

// ReportFilter narrows the report listing. Empty or "all" values
// disable a filter; values that fail to parse are ignored, never an
// error.
type ReportFilter struct {
	Status     string
	Type       string
	TargetType string
	Search     string
	Page       int
	PageSize   int
}

func filterActive(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v != "" && v != "all"
}

// ListReports returns one page of reports newest-first plus the total
// matching count.
func (s *ModerationService) ListReports(f ReportFilter) ([]models.Report, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 10
	}

	query := s.db.Model(&models.Report{})

	if filterActive(f.Status) {
		if status, ok := models.ParseReportStatus(f.Status); ok {
			query = query.Where("reports.status = ?", status)
		}
	}
	if filterActive(f.Type) {
		if typ, ok := models.ParseReportType(f.Type); ok {
			query = query.Where("reports.type_of_report = ?", typ)
		}
	}
	if filterActive(f.TargetType) {
		if target, ok := models.ParseReportTargetType(f.TargetType); ok {
			query = query.Where("reports.target_type = ?", target)
		}
	}
	if strings.TrimSpace(f.Search) != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
		query = query.
			Joins("LEFT JOIN users AS reporter ON reporter.id = reports.reporter_id").
			Joins("LEFT JOIN users AS reported ON reported.id = reports.reported_user_id").
			Where("LOWER(reports.reason) LIKE ? OR LOWER(reporter.full_name) LIKE ? OR LOWER(reported.full_name) LIKE ?",
				pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.
		Preload("Reporter").
		Preload("ReportedUser").
		Order("reports.reported_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// GetReportDetails loads a report with both involved users and a
// summary of the reported content. A target that no longer exists
// simply leaves the summary empty.
func (s *ModerationService) GetReportDetails(reportID uuid.UUID) (*dto.ReportDetails, error) {
	var report models.Report
	if err := s.db.Preload("Reporter").Preload("ReportedUser").
		First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	details := &dto.ReportDetails{
		ReportID:       report.ID,
		ReporterName:   report.Reporter.DisplayName(),
		ReporterEmail:  report.Reporter.Email,
		ReporterAvatar: avatarOrDefault(report.Reporter.AvatarURL),
		TypeOfReport:   string(report.TypeOfReport),
		TargetType:     string(report.TargetType),
		TargetID:       report.TargetID,
		ReportedUserID: report.ReportedUserID,
		Reason:         report.Reason,
		ReportedAt:     report.ReportedAt.Format("02/01/2006 15:04"),
		Status:         string(report.Status),
		AdminNotes:     report.AdminNotes,
		TargetLink:     "#",
	}
	if report.ReportedUser != nil {
		details.ReportedUserName = report.ReportedUser.DisplayName()
		details.ReportedEmail = report.ReportedUser.Email
		details.ReportedAvatar = avatarOrDefault(report.ReportedUser.AvatarURL)
	}

	s.resolveTarget(&report, details)
	return details, nil
}

func (s *ModerationService) resolveTarget(report *models.Report, details *dto.ReportDetails) {
	switch {
	case report.TargetType == models.TargetTypePost && report.TargetID != nil:
		var post models.Post
		if err := s.db.First(&post, "id = ?", *report.TargetID).Error; err == nil {
			details.TargetContent = &dto.TargetContent{
				Type:    "Post",
				Title:   post.Title,
				Content: truncate(post.Content, 200),
			}
			details.TargetLink = fmt.Sprintf("%s/posts/%s", s.siteURL, post.ID)
		}
	case report.TargetType == models.TargetTypeComment && report.TargetID != nil:
		var comment models.PostComment
		if err := s.db.First(&comment, "id = ?", *report.TargetID).Error; err == nil {
			details.TargetContent = &dto.TargetContent{
				Type:    "Comment",
				Content: truncate(comment.Content, 200),
			}
			details.TargetLink = fmt.Sprintf("%s/posts/%s#comment-%s", s.siteURL, comment.PostID, comment.ID)
		}
	case report.TargetType == models.TargetTypeReview && report.TargetID != nil:
		var review models.Review
		if err := s.db.First(&review, "id = ?", *report.TargetID).Error; err == nil {
			details.TargetContent = &dto.TargetContent{
				Type:    "Review",
				Content: truncate(review.Comment, 200),
			}
			details.TargetLink = fmt.Sprintf("%s/spots/%s", s.siteURL, review.SpotID)
		}
	case report.TargetType == models.TargetTypeUser && report.ReportedUserID != nil:
		details.TargetContent = &dto.TargetContent{Type: "User"}
		details.TargetLink = fmt.Sprintf("%s/admin/users/%s", s.siteURL, *report.ReportedUserID)
	}
}

// ProcessReport applies the admin's chosen action and status to one
// report. At most one content effect and one user effect happen; each
// effect and the status change are reported independently in the
// outcome. Everything runs in a single transaction, so a store
// failure leaves the report and its target untouched.
//
// Concurrent processing of the same report by two admins is
// last-writer-wins; there is no optimistic locking.
func (s *ModerationService) ProcessReport(reportID uuid.UUID, newStatus, adminAction, adminNotes string, adminID uuid.UUID) (*dto.ReportOutcome, error) {
	var report models.Report
	if err := s.db.Preload("ReportedUser").First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	outcome := &dto.ReportOutcome{ReportID: report.ID}
	action := models.ParseAdminAction(adminAction)

	// Status falls back to the current one when the input does not
	// parse; that is a warning, not a failure. No auto-promotion to
	// resolved happens when a sanction was applied: the status stays
	// the admin's explicit choice.
	statusToSet := report.Status
	if parsed, ok := models.ParseReportStatus(newStatus); ok {
		statusToSet = parsed
	} else {
		outcome.Warnings = append(outcome.Warnings,
			fmt.Sprintf("requested status %q is invalid, keeping %q", newStatus, report.Status))
	}
	outcome.FinalStatus = statusToSet

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if action == models.ActionDeleteContent {
			if err := deleteReportTarget(tx, &report, outcome); err != nil {
				return err
			}
		}

		if report.ReportedUserID != nil {
			name := ""
			if report.ReportedUser != nil {
				name = report.ReportedUser.DisplayName()
			}
			switch action {
			case models.ActionWarnUser:
				// Extension point: a warning counter would be
				// incremented here.
				outcome.UserWarned = true
				outcome.Messages = append(outcome.Messages, "warning recorded for user "+name)
			case models.ActionBanUser:
				if err := tx.Model(&models.User{}).
					Where("id = ?", *report.ReportedUserID).
					Update("status", models.UserStatusBanned).Error; err != nil {
					return err
				}
				outcome.UserBanned = true
				outcome.Messages = append(outcome.Messages, "banned user "+name)
			}
		} else if action.RequestsUserSanction() {
			outcome.Warnings = append(outcome.Warnings,
				"report is not tied to a user; no warning or ban applied")
		}

		now := time.Now().UTC()
		report.AdminUserID = &adminID
		report.ResolvedAt = &now
		report.AdminNotes = adminNotes
		report.Status = statusToSet
		return tx.Omit(clause.Associations).Save(&report).Error
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func deleteReportTarget(tx *gorm.DB, report *models.Report, outcome *dto.ReportOutcome) error {
	if report.TargetID == nil {
		outcome.Warnings = append(outcome.Warnings, "delete_content does not apply to this target")
		return nil
	}

	var res *gorm.DB
	var kind string
	switch report.TargetType {
	case models.TargetTypePost:
		res, kind = tx.Delete(&models.Post{}, "id = ?", *report.TargetID), "post"
	case models.TargetTypeComment:
		res, kind = tx.Delete(&models.PostComment{}, "id = ?", *report.TargetID), "comment"
	case models.TargetTypeReview:
		res, kind = tx.Delete(&models.Review{}, "id = ?", *report.TargetID), "review"
	default:
		outcome.Warnings = append(outcome.Warnings, "delete_content does not apply to this target")
		return nil
	}

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Already gone; a no-op, not a failure.
		outcome.Warnings = append(outcome.Warnings, kind+" to delete was not found")
		return nil
	}
	outcome.ContentDeleted = true
	outcome.Messages = append(outcome.Messages, fmt.Sprintf("deleted %s %s", kind, *report.TargetID))
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func avatarOrDefault(url string) string {
	if url == "" {
		return defaultAvatar
	}
	return url
}
