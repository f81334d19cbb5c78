package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeboard/internal/model"
)

func TestProfileDetail(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	// Deliberately interleaved dates; the feed keeps kind order, not
	// date order.
	createAnnouncement(t, db, alice.ID, model.CategoryGeneral, "first ann", "body", "2024-04-05 09:00:00")
	createAnnouncement(t, db, alice.ID, model.CategoryGeneral, "second ann", "body", "2024-04-01 09:00:00")
	m := createMarketplace(t, db, alice.ID, model.CategorySellers, "gpu rig", "desc", "0.5 BTC", "2024-04-03 09:00:00")
	createServiceListing(t, db, alice.ID, model.CategorySell, "escrow", "desc", "1%", "2024-04-04 09:00:00")
	createMarketplace(t, db, bob.ID, model.CategoryBuyers, "wanted: ssd", "", "", "2024-04-02 09:00:00")

	createComment(t, db, bob.ID, model.PostTypeMarketplace, m.ID, "still available?", "2024-04-06 09:00:00")

	svc := NewProfileService(db)
	profile, err := svc.Detail("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, DefaultAvatar, profile.Avatar)
	assert.Equal(t, int64(4), profile.PostCount)
	require.Len(t, profile.Posts, 4)
	assert.Equal(t, int64(len(profile.Posts)), profile.PostCount)

	kinds := make([]string, 0, len(profile.Posts))
	for _, p := range profile.Posts {
		kinds = append(kinds, p.PostType)
	}
	assert.Equal(t, []string{KindAnnouncements, KindAnnouncements, KindMarketplace, KindServices}, kinds)
	assert.Equal(t, "first ann", profile.Posts[0].Title, "insertion order within a kind")
	assert.Equal(t, int64(1), profile.Posts[2].Comments)
}

func TestProfileUnknownUser(t *testing.T) {
	svc := NewProfileService(openTestDB(t))
	_, err := svc.Detail("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
