package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"tradeboard/internal/pkg"
)

const ChallengeTTL = 5 * time.Minute

// Challenge is the code+image pair bound to one login attempt. The code
// itself never leaves the server.
type Challenge struct {
	ID        string `json:"captcha_id"`
	ImagePath string `json:"captcha_image"`
}

type challengeRecord struct {
	Code      string `json:"code"`
	ImagePath string `json:"image_path"`
}

// ChallengeStore keeps pending challenges. Take must remove the record, so
// every challenge is single-use whatever the outcome.
type ChallengeStore interface {
	Put(ctx context.Context, id string, rec []byte, ttl time.Duration) error
	Take(ctx context.Context, id string) ([]byte, bool, error)
}

type CaptchaService struct {
	store    ChallengeStore
	renderer *pkg.CaptchaRenderer
}

func NewCaptchaService(store ChallengeStore, renderer *pkg.CaptchaRenderer) *CaptchaService {
	return &CaptchaService{store: store, renderer: renderer}
}

// Issue mints a fresh 6-character challenge and its image artifact.
func (s *CaptchaService) Issue(ctx context.Context) (*Challenge, error) {
	code, err := pkg.RandCode(6, pkg.CaptchaChars)
	if err != nil {
		return nil, err
	}
	path, err := s.renderer.WriteImage(code)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	rec, err := json.Marshal(challengeRecord{Code: code, ImagePath: path})
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, id, rec, ChallengeTTL); err != nil {
		return nil, err
	}
	return &Challenge{ID: id, ImagePath: path}, nil
}

// Verify consumes the challenge and compares the normalized answer. On
// success it returns the image path so the caller can clean the artifact
// up; on mismatch the artifact is left behind, as the consumed code can no
// longer be replayed anyway.
func (s *CaptchaService) Verify(ctx context.Context, id, answer string) (string, error) {
	raw, ok, err := s.store.Take(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidChallenge
	}

	var rec challengeRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", err
	}
	if strings.ToUpper(strings.TrimSpace(answer)) != rec.Code {
		return "", ErrInvalidChallenge
	}
	return rec.ImagePath, nil
}
