package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeboard/internal/pkg"
)

func TestChallengeIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := newMemChallengeStore()
	svc := NewCaptchaService(store, pkg.NewCaptchaRenderer(dir))

	ch, err := svc.Issue(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, dir, filepath.Dir(ch.ImagePath))
	assert.True(t, strings.HasPrefix(filepath.Base(ch.ImagePath), "captcha_"))
	assert.True(t, strings.HasSuffix(ch.ImagePath, ".png"))
	_, err = os.Stat(ch.ImagePath)
	require.NoError(t, err)

	code := codeFor(t, store, ch.ID)
	path, err := svc.Verify(ctx, ch.ID, code)
	require.NoError(t, err)
	assert.Equal(t, ch.ImagePath, path)

	// Consumed on first use; replays fail.
	_, err = svc.Verify(ctx, ch.ID, code)
	assert.ErrorIs(t, err, ErrInvalidChallenge)
}

func TestChallengeUnknownID(t *testing.T) {
	svc := NewCaptchaService(newMemChallengeStore(), pkg.NewCaptchaRenderer(t.TempDir()))
	_, err := svc.Verify(context.Background(), "no-such-id", "ABC123")
	assert.ErrorIs(t, err, ErrInvalidChallenge)
}

func TestChallengeAnswerNormalization(t *testing.T) {
	ctx := context.Background()
	store := newMemChallengeStore()
	svc := NewCaptchaService(store, pkg.NewCaptchaRenderer(t.TempDir()))

	ch, err := svc.Issue(ctx)
	require.NoError(t, err)
	code := codeFor(t, store, ch.ID)

	_, err = svc.Verify(ctx, ch.ID, "  "+strings.ToLower(code)+"\t")
	assert.NoError(t, err)
}
