package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimitRedisRepository implements ports.RateLimitRepository with a fixed
// window counter. All counters live under the caller-supplied prefix.
type RateLimitRedisRepository struct {
	r redis.Cmdable
}

func NewRateLimitRedisRepository(r redis.Cmdable) *RateLimitRedisRepository {
	return &RateLimitRedisRepository{r: r}
}

// IncrementWindow bumps the counter for key in the current fixed window and
// returns the post-increment count together with the window's reset time. The
// counter key carries the window start so counters roll over naturally; ttl
// keeps stale windows from accumulating.
func (repo *RateLimitRedisRepository) IncrementWindow(ctx context.Context, key string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	now := time.Now()
	windowStart := now.Truncate(window)
	reset := windowStart.Add(window)

	counterKey := fmt.Sprintf("%s:%s:%d", keyPrefix, key, windowStart.Unix())

	pipe := repo.r.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, reset, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	return int(incr.Val()), reset, nil
}
