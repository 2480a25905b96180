// db/rate_limiter.go
package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/quill/logging"
)

// RateLimiter is a sliding-window limiter backed by a Redis sorted set per key.
type RateLimiter struct {
	client redis.Cmdable
	limit  int
	per    time.Duration
	now    func() time.Time
}

func NewRateLimiter(client redis.Cmdable, limit int, per time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, per: per, now: time.Now}
}

// Allow records a hit for key and reports whether it is within the window.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := r.now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now-r.per.Nanoseconds(), 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: uuid.NewString()})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(r.limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", r.limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
