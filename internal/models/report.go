package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the moderation lifecycle state of a report. A status
// never reverts to pending automatically; only admins change it.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ParseReportStatus parses a status case-insensitively. ok is false for
// unknown values; callers decide whether that is a warning or a no-op.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ReportStatusPending:
		return ReportStatusPending, true
	case ReportStatusResolved:
		return ReportStatusResolved, true
	case ReportStatusDismissed:
		return ReportStatusDismissed, true
	}
	return "", false
}

// ReportTargetType names the kind of content (or account) a report is
// filed against.
type ReportTargetType string

const (
	TargetTypePost    ReportTargetType = "post"
	TargetTypeComment ReportTargetType = "comment"
	TargetTypeReview  ReportTargetType = "review"
	TargetTypeUser    ReportTargetType = "user"
)

func ParseReportTargetType(s string) (ReportTargetType, bool) {
	switch ReportTargetType(strings.ToLower(strings.TrimSpace(s))) {
	case TargetTypePost:
		return TargetTypePost, true
	case TargetTypeComment:
		return TargetTypeComment, true
	case TargetTypeReview:
		return TargetTypeReview, true
	case TargetTypeUser:
		return TargetTypeUser, true
	}
	return "", false
}

// ReportType is the reporter-chosen reason category.
type ReportType string

const (
	ReportTypeSpam          ReportType = "spam"
	ReportTypeAbuse         ReportType = "abuse"
	ReportTypeInappropriate ReportType = "inappropriate"
	ReportTypeOther         ReportType = "other"
)

func ParseReportType(s string) (ReportType, bool) {
	switch ReportType(strings.ToLower(strings.TrimSpace(s))) {
	case ReportTypeSpam:
		return ReportTypeSpam, true
	case ReportTypeAbuse:
		return ReportTypeAbuse, true
	case ReportTypeInappropriate:
		return ReportTypeInappropriate, true
	case ReportTypeOther:
		return ReportTypeOther, true
	}
	return "", false
}

// AdminAction is the closed set of effects an admin can request while
// processing a report. Unrecognized input parses to ActionNone.
type AdminAction string

const (
	ActionNone          AdminAction = ""
	ActionDeleteContent AdminAction = "delete_content"
	ActionWarnUser      AdminAction = "warn_user"
	ActionBanUser       AdminAction = "ban_user"
	ActionIgnoreReport  AdminAction = "ignore_report"
)

func ParseAdminAction(s string) AdminAction {
	switch AdminAction(strings.ToLower(strings.TrimSpace(s))) {
	case ActionDeleteContent:
		return ActionDeleteContent
	case ActionWarnUser:
		return ActionWarnUser
	case ActionBanUser:
		return ActionBanUser
	case ActionIgnoreReport:
		return ActionIgnoreReport
	}
	return ActionNone
}

// RequestsUserSanction reports whether the action targets the reported
// user's account rather than content.
func (a AdminAction) RequestsUserSanction() bool {
	return a == ActionWarnUser || a == ActionBanUser
}

// Report is a user-submitted flag against a post, comment, review or
// user account, tracked through the moderation lifecycle.
type Report struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Reporter       User             `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	ReportedUserID *uuid.UUID       `gorm:"type:uuid;index" json:"reported_user_id,omitempty"`
	ReportedUser   *User            `gorm:"foreignKey:ReportedUserID" json:"reported_user,omitempty"`
	TypeOfReport   ReportType       `gorm:"size:50;index" json:"type_of_report"`
	TargetType     ReportTargetType `gorm:"size:50;index" json:"target_type"`
	TargetID       *uuid.UUID       `gorm:"type:uuid" json:"target_id,omitempty"`
	Reason         string           `gorm:"not null;size:500" json:"reason"`
	Status         ReportStatus     `gorm:"size:50;not null;default:'pending';index" json:"status"`
	AdminNotes     string           `gorm:"size:1000" json:"admin_notes,omitempty"`
	AdminUserID    *uuid.UUID       `gorm:"type:uuid" json:"admin_user_id,omitempty"`
	ReportedAt     time.Time        `gorm:"not null;index" json:"reported_at"`
	ResolvedAt     *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
