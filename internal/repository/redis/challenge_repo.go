package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrChallengePutFailed = errors.New("challenge put failed")
	ErrRedisUnavailable   = errors.New("redis unavailable")
)

const ChallengePrefix = "login:captcha"

// ChallengeRepository holds pending CAPTCHA challenges. Take removes the
// record atomically, so a challenge can be consumed at most once even under
// concurrent submits.
type ChallengeRepository struct {
	Client *redis.Client
}

func (r *ChallengeRepository) Put(ctx context.Context, id string, rec []byte, ttl time.Duration) error {
	key := fmt.Sprintf("%s:%s", ChallengePrefix, id)
	if err := r.Client.Set(ctx, key, rec, ttl).Err(); err != nil {
		return ErrChallengePutFailed
	}
	return nil
}

func (r *ChallengeRepository) Take(ctx context.Context, id string) ([]byte, bool, error) {
	key := fmt.Sprintf("%s:%s", ChallengePrefix, id)
	val, err := r.Client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ErrRedisUnavailable
	}
	return val, true, nil
}
