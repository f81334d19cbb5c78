package pkg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandCode(t *testing.T) {
	code, err := RandCode(6, CaptchaChars)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(CaptchaChars, r), "unexpected character %q", r)
	}

	lower, err := RandCode(10, LowercaseChars)
	require.NoError(t, err)
	assert.Len(t, lower, 10)
	assert.Equal(t, strings.ToLower(lower), lower)
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	assert.Len(t, ts, 19)
	_, err := time.Parse(DateLayout, ts)
	assert.NoError(t, err)
}
