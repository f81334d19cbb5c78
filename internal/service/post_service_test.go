package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeboard/internal/model"
)

func TestCreatePostValidation(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	svc := NewPostService(db)

	_, err := svc.CreateAnnouncement(alice.ID, model.CategoryGeneral, "", "body")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateAnnouncement(alice.ID, "Sellers", "wrong enum", "body")
	assert.ErrorIs(t, err, ErrValidation, "marketplace category on an announcement")

	_, err = svc.CreateMarketplace(alice.ID, "General", "wrong enum", "", "")
	assert.ErrorIs(t, err, ErrValidation)

	a, err := svc.CreateAnnouncement(alice.ID, model.CategoryGeneral, "hello", "body")
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Len(t, a.Date, 19, "fixed-width timestamp")
}

func TestPostDetail(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	m := createMarketplace(t, db, alice.ID, model.CategorySellers, "gpu rig", "desc", "0.5 BTC", "2024-05-01 09:00:00")
	createAnnouncement(t, db, alice.ID, model.CategoryGeneral, "ann", "body", "2024-05-01 10:00:00")
	createComment(t, db, bob.ID, model.PostTypeMarketplace, m.ID, "older", "2024-05-02 09:00:00")
	createComment(t, db, bob.ID, model.PostTypeMarketplace, m.ID, "newer", "2024-05-03 09:00:00")

	svc := NewPostService(db)
	detail, err := svc.Detail(KindMarketplace, m.ID)
	require.NoError(t, err)

	assert.Equal(t, "gpu rig", detail.Post.Title)
	assert.Equal(t, "alice", detail.Post.Username)
	assert.Equal(t, int64(2), detail.Post.Comments)
	assert.Equal(t, "alice", detail.Author.Username)
	assert.Equal(t, int64(2), detail.Author.PostCount, "counts every kind, not just this one")
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "newer", detail.Comments[0].Content, "newest first")
	assert.Equal(t, "bob", detail.Comments[0].Username)
}

func TestPostDetailNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewPostService(db)

	_, err := svc.Detail(KindMarketplace, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Detail("auctions", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
