package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourismweb/admin-backend/internal/models"
)

func TestCommentServiceMergesCommentsAndReviews(t *testing.T) {
	db := testDB(t)
	svc := NewCommentService(db)

	author := makeUser(t, db, "Author")
	post := makePost(t, db, author, "A post", models.PostTypeGuidebook, time.Time{})
	spot := makeSpot(t, db, "Ba Na Hills")

	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	comment := &models.PostComment{ID: uuid.New(), PostID: post.ID, UserID: author.ID, Content: "nice"}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, db.Model(comment).Update("created_at", base).Error)

	review := &models.Review{ID: uuid.New(), SpotID: spot.ID, UserID: author.ID, Rating: 4, Comment: "worth it"}
	require.NoError(t, db.Create(review).Error)
	require.NoError(t, db.Model(review).Update("created_at", base.AddDate(0, 0, 1)).Error)

	resp, err := svc.ListAll(1, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Comments, 2)

	newest := resp.Comments[0]
	assert.Equal(t, "review", newest.Kind)
	assert.Equal(t, "worth it", newest.Content)
	assert.Equal(t, "Ba Na Hills", newest.Parent)
	assert.Equal(t, 4, newest.Rating)

	oldest := resp.Comments[1]
	assert.Equal(t, "comment", oldest.Kind)
	assert.Equal(t, "A post", oldest.Parent)
	assert.Equal(t, "Author", oldest.AuthorName)
}

func TestCommentServicePaging(t *testing.T) {
	db := testDB(t)
	svc := NewCommentService(db)

	author := makeUser(t, db, "Author")
	post := makePost(t, db, author, "P", models.PostTypeGuidebook, time.Time{})
	for i := 0; i < 5; i++ {
		c := &models.PostComment{ID: uuid.New(), PostID: post.ID, UserID: author.ID, Content: "c"}
		require.NoError(t, db.Create(c).Error)
	}

	resp, err := svc.ListAll(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Comments, 2)

	resp, err = svc.ListAll(99, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PageNumber)
}
