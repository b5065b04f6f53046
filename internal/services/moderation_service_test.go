package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourismweb/admin-backend/internal/models"
)

func TestProcessReportDeletesPost(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	author := makeUser(t, db, "Author")
	post := makePost(t, db, author, "Spam post", models.PostTypeGuidebook, time.Time{})
	report := makeReport(t, db, reporter, author, models.TargetTypePost, &post.ID)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "resolved", "delete_content", "spam confirmed", admin.ID)
	require.NoError(t, err)

	assert.True(t, outcome.ContentDeleted)
	assert.False(t, outcome.UserBanned)
	assert.Equal(t, models.ReportStatusResolved, outcome.FinalStatus)
	assert.Empty(t, outcome.Warnings)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count, "post should be gone")

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportStatusResolved, stored.Status)
	assert.Equal(t, "spam confirmed", stored.AdminNotes)
	require.NotNil(t, stored.AdminUserID)
	assert.Equal(t, admin.ID, *stored.AdminUserID)
	require.NotNil(t, stored.ResolvedAt)
}

func TestProcessReportMissingTargetStillAppliesStatus(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	author := makeUser(t, db, "Author")
	goneID := uuid.New()
	report := makeReport(t, db, reporter, author, models.TargetTypeComment, &goneID)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "resolved", "delete_content", "", admin.ID)
	require.NoError(t, err)

	assert.False(t, outcome.ContentDeleted)
	assert.NotEmpty(t, outcome.Warnings)
	assert.Equal(t, models.ReportStatusResolved, outcome.FinalStatus)

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportStatusResolved, stored.Status)
}

func TestProcessReportBansUser(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	offender := makeUser(t, db, "Offender")
	report := makeReport(t, db, reporter, offender, models.TargetTypeUser, nil)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "resolved", "ban_user", "repeat offender", admin.ID)
	require.NoError(t, err)

	assert.True(t, outcome.UserBanned)
	assert.False(t, outcome.UserWarned)

	var banned models.User
	require.NoError(t, db.First(&banned, "id = ?", offender.ID).Error)
	assert.Equal(t, models.UserStatusBanned, banned.Status)
}

func TestProcessReportBanWithoutReportedUser(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	report := makeReport(t, db, reporter, nil, models.TargetTypePost, nil)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "dismissed", "ban_user", "", admin.ID)
	require.NoError(t, err)

	assert.False(t, outcome.UserBanned)
	assert.NotEmpty(t, outcome.Warnings)
	assert.Equal(t, models.ReportStatusDismissed, outcome.FinalStatus)
}

func TestProcessReportWarnUser(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	offender := makeUser(t, db, "Offender")
	report := makeReport(t, db, reporter, offender, models.TargetTypeUser, nil)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "resolved", "warn_user", "", admin.ID)
	require.NoError(t, err)

	assert.True(t, outcome.UserWarned)
	assert.False(t, outcome.UserBanned)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", offender.ID).Error)
	assert.Equal(t, models.UserStatusActive, user.Status, "a warning never changes account status")
}

func TestProcessReportInvalidStatusKeepsCurrent(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	report := makeReport(t, db, reporter, nil, models.TargetTypePost, nil)
	admin := makeUser(t, db, "Admin")

	outcome, err := svc.ProcessReport(report.ID, "closed", "", "noted", admin.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ReportStatusPending, outcome.FinalStatus)
	assert.NotEmpty(t, outcome.Warnings)

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportStatusPending, stored.Status)
	assert.Equal(t, "noted", stored.AdminNotes, "stamping still happens on an invalid status")
	require.NotNil(t, stored.ResolvedAt)
}

func TestProcessReportLastWriterWins(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	offender := makeUser(t, db, "Offender")
	report := makeReport(t, db, reporter, offender, models.TargetTypeUser, nil)
	firstAdmin := makeUser(t, db, "First Admin")
	secondAdmin := makeUser(t, db, "Second Admin")

	_, err := svc.ProcessReport(report.ID, "dismissed", "ignore_report", "looks fine", firstAdmin.ID)
	require.NoError(t, err)

	outcome, err := svc.ProcessReport(report.ID, "resolved", "ban_user", "second look, banning", secondAdmin.ID)
	require.NoError(t, err)
	assert.True(t, outcome.UserBanned)

	// Reprocessing overwrites the earlier decision outright; nothing of
	// the first admin's stamp survives.
	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportStatusResolved, stored.Status)
	assert.Equal(t, "second look, banning", stored.AdminNotes)
	require.NotNil(t, stored.AdminUserID)
	assert.Equal(t, secondAdmin.ID, *stored.AdminUserID)

	var banned models.User
	require.NoError(t, db.First(&banned, "id = ?", offender.ID).Error)
	assert.Equal(t, models.UserStatusBanned, banned.Status)
}

func TestProcessReportDeleteReviewAndComment(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	author := makeUser(t, db, "Author")
	admin := makeUser(t, db, "Admin")

	spot := makeSpot(t, db, "Old Quarter")
	review := &models.Review{ID: uuid.New(), SpotID: spot.ID, UserID: author.ID, Rating: 1, Comment: "bad"}
	require.NoError(t, db.Create(review).Error)

	post := makePost(t, db, author, "A post", models.PostTypeExperience, time.Time{})
	comment := &models.PostComment{ID: uuid.New(), PostID: post.ID, UserID: author.ID, Content: "rude"}
	require.NoError(t, db.Create(comment).Error)

	reviewReport := makeReport(t, db, reporter, author, models.TargetTypeReview, &review.ID)
	commentReport := makeReport(t, db, reporter, author, models.TargetTypeComment, &comment.ID)

	out, err := svc.ProcessReport(reviewReport.ID, "resolved", "delete_content", "", admin.ID)
	require.NoError(t, err)
	assert.True(t, out.ContentDeleted)

	out, err = svc.ProcessReport(commentReport.ID, "resolved", "delete_content", "", admin.ID)
	require.NoError(t, err)
	assert.True(t, out.ContentDeleted)

	var n int64
	db.Model(&models.Review{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.PostComment{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.Post{}).Count(&n)
	assert.Equal(t, int64(1), n, "the parent post survives")
}

func TestProcessReportNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	_, err := svc.ProcessReport(uuid.New(), "resolved", "", "", uuid.New())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestProcessReportDoesNotClobberReportedUser(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	offender := makeUser(t, db, "Offender")
	report := makeReport(t, db, reporter, offender, models.TargetTypeUser, nil)
	admin := makeUser(t, db, "Admin")

	// The report row is saved after the ban; the preloaded user
	// association must not be written back with its stale status.
	_, err := svc.ProcessReport(report.ID, "resolved", "ban_user", "", admin.ID)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", offender.ID).Error)
	assert.Equal(t, models.UserStatusBanned, user.Status)
}

func TestListReportsFilters(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Nguyen Van A")
	offender := makeUser(t, db, "Tran Thi B")

	pending := makeReport(t, db, reporter, offender, models.TargetTypePost, nil)
	resolved := makeReport(t, db, reporter, nil, models.TargetTypeComment, nil)
	require.NoError(t, db.Model(resolved).Updates(map[string]interface{}{
		"status":         models.ReportStatusResolved,
		"type_of_report": models.ReportTypeAbuse,
	}).Error)

	t.Run("status filter", func(t *testing.T) {
		reports, total, err := svc.ListReports(ReportFilter{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, reports, 1)
		assert.Equal(t, pending.ID, reports[0].ID)
	})

	t.Run("all and invalid filters are ignored", func(t *testing.T) {
		_, total, err := svc.ListReports(ReportFilter{Status: "all"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		_, total, err = svc.ListReports(ReportFilter{Status: "bogus"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total, "an unparseable status behaves like all")
	})

	t.Run("type filter", func(t *testing.T) {
		reports, total, err := svc.ListReports(ReportFilter{Type: "abuse"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, reports, 1)
		assert.Equal(t, resolved.ID, reports[0].ID)
	})

	t.Run("search matches reported user name", func(t *testing.T) {
		reports, total, err := svc.ListReports(ReportFilter{Search: "tran thi"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, reports, 1)
		assert.Equal(t, pending.ID, reports[0].ID)
	})

	t.Run("search matches reason", func(t *testing.T) {
		_, total, err := svc.ListReports(ReportFilter{Search: "SPAMMY"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestListReportsOrderAndPaging(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://localhost:8080")

	reporter := makeUser(t, db, "Reporter")
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		r := makeReport(t, db, reporter, nil, models.TargetTypePost, nil)
		require.NoError(t, db.Model(r).Update("reported_at", base.AddDate(0, 0, i)).Error)
		ids = append(ids, r.ID)
	}

	reports, total, err := svc.ListReports(ReportFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, reports, 2)
	assert.Equal(t, ids[4], reports[0].ID, "newest first")
	assert.Equal(t, ids[3], reports[1].ID)

	reports, _, err = svc.ListReports(ReportFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, ids[0], reports[0].ID)
}

func TestGetReportDetails(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://site.example")

	reporter := makeUser(t, db, "Reporter")
	author := makeUser(t, db, "Author")
	post := makePost(t, db, author, "Long post", models.PostTypeGuidebook, time.Time{})
	longContent := make([]rune, 0, 250)
	for i := 0; i < 250; i++ {
		longContent = append(longContent, 'x')
	}
	require.NoError(t, db.Model(post).Update("content", string(longContent)).Error)
	report := makeReport(t, db, reporter, author, models.TargetTypePost, &post.ID)

	details, err := svc.GetReportDetails(report.ID)
	require.NoError(t, err)

	assert.Equal(t, "Reporter", details.ReporterName)
	assert.Equal(t, "Author", details.ReportedUserName)
	require.NotNil(t, details.TargetContent)
	assert.Equal(t, "Post", details.TargetContent.Type)
	assert.Equal(t, "Long post", details.TargetContent.Title)
	assert.Len(t, []rune(details.TargetContent.Content), 203, "200 runes plus the ellipsis")
	assert.Equal(t, "http://site.example/posts/"+post.ID.String(), details.TargetLink)

	_, err = svc.GetReportDetails(uuid.New())
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestGetReportDetailsGoneTarget(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, "http://site.example")

	reporter := makeUser(t, db, "Reporter")
	goneID := uuid.New()
	report := makeReport(t, db, reporter, nil, models.TargetTypePost, &goneID)

	details, err := svc.GetReportDetails(report.ID)
	require.NoError(t, err)
	assert.Nil(t, details.TargetContent)
	assert.Equal(t, "#", details.TargetLink)
}
