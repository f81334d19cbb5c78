package service

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeboard/internal/model"
)

func TestShoutAddTruncates(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	svc := NewShoutService(db)

	long := strings.Repeat("x", model.MaxShoutLen+30)
	sh, err := svc.Add(alice.ID, long)
	require.NoError(t, err)
	assert.Len(t, sh.Message, model.MaxShoutLen)

	_, err = svc.Add(alice.ID, "")
	assert.ErrorIs(t, err, ErrValidation)
}

// The limit is 50 characters, not 50 bytes; multi-byte input must neither be
// over-truncated nor cut mid-rune.
func TestShoutAddTruncatesByRune(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")
	svc := NewShoutService(db)

	// 30 Cyrillic characters are 60 bytes and fit untouched.
	cyrillic := strings.Repeat("ж", 30)
	sh, err := svc.Add(alice.ID, cyrillic)
	require.NoError(t, err)
	assert.Equal(t, cyrillic, sh.Message)

	// Byte 50 would land inside the two-byte "é"; the cut must fall on the
	// rune boundary and leave valid UTF-8 behind.
	mixed := strings.Repeat("x", model.MaxShoutLen-1) + "éé"
	sh, err = svc.Add(alice.ID, mixed)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", model.MaxShoutLen-1)+"é", sh.Message)
	assert.Equal(t, model.MaxShoutLen, utf8.RuneCountInString(sh.Message))
	assert.True(t, utf8.ValidString(sh.Message))
}

func TestShoutRecent(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice")

	for i := 1; i <= 25; i++ {
		sh := &model.Shout{
			UserID:    alice.ID,
			Message:   fmt.Sprintf("shout %d", i),
			Timestamp: fmt.Sprintf("2024-07-%02d 09:00:00", i),
		}
		require.NoError(t, db.Create(sh).Error)
	}

	svc := NewShoutService(db)
	shouts, err := svc.Recent(0)
	require.NoError(t, err)
	require.Len(t, shouts, DefaultShoutLimit)
	assert.Equal(t, "shout 25", shouts[0].Message, "newest first")
	assert.Equal(t, "alice", shouts[0].Username)

	five, err := svc.Recent(5)
	require.NoError(t, err)
	assert.Len(t, five, 5)
}
