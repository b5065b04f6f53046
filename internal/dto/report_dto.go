package dto

import (
	"github.com/google/uuid"
	"github.com/tourismweb/admin-backend/internal/models"
)

type ProcessReportRequest struct {
	NewStatus   string `json:"new_status"`
	AdminAction string `json:"admin_action"`
	AdminNotes  string `json:"admin_notes"`
}

// ReportOutcome enumerates what processing a report actually did. The
// three effects (content, user, status) succeed or are skipped
// independently and each is visible here.
type ReportOutcome struct {
	ReportID       uuid.UUID           `json:"report_id"`
	ContentDeleted bool                `json:"content_deleted"`
	UserWarned     bool                `json:"user_warned"`
	UserBanned     bool                `json:"user_banned"`
	FinalStatus    models.ReportStatus `json:"final_status"`
	Messages       []string            `json:"messages,omitempty"`
	Warnings       []string            `json:"warnings,omitempty"`
}

// TargetContent is a short summary of the reported content shown in
// the report detail panel.
type TargetContent struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

type ReportDetails struct {
	ReportID         uuid.UUID      `json:"report_id"`
	ReporterName     string         `json:"reporter_name"`
	ReporterEmail    string         `json:"reporter_email"`
	ReporterAvatar   string         `json:"reporter_avatar"`
	TypeOfReport     string         `json:"type_of_report"`
	TargetType       string         `json:"target_type"`
	TargetID         *uuid.UUID     `json:"target_id,omitempty"`
	ReportedUserID   *uuid.UUID     `json:"reported_user_id,omitempty"`
	ReportedUserName string         `json:"reported_user_name,omitempty"`
	ReportedEmail    string         `json:"reported_user_email,omitempty"`
	ReportedAvatar   string         `json:"reported_user_avatar,omitempty"`
	Reason           string         `json:"reason"`
	ReportedAt       string         `json:"reported_at"`
	Status           string         `json:"status"`
	AdminNotes       string         `json:"admin_notes"`
	TargetContent    *TargetContent `json:"target_content,omitempty"`
	TargetLink       string         `json:"target_link"`
}

type ReportListResponse struct {
	Reports    []models.Report `json:"reports"`
	Total      int64           `json:"total"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
