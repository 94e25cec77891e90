package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores serialized upstream payloads for the cached public reads
// (gallery, reviews, FAQ, team, modules). Keys are namespaced under a prefix
// so cache entries never collide with the rate-limit counters sharing the
// same Redis instance.
type RedisCache struct {
	r      redis.Cmdable
	prefix string
}

func NewRedisCache(r redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{r: r, prefix: prefix}
}

func (c *RedisCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// Get returns the cached payload for key. A miss is (nil, false, nil); only
// transport failures surface as errors, and callers treat those as misses.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.r.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.r.Set(ctx, c.key(key), value, ttl).Err()
}

// Delete drops a key so the next read repopulates from upstream. Admin writes
// use it to invalidate the resource they touched.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.r.Del(ctx, c.key(key)).Err()
}
