package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-redis/redis/v8"

	"github.com/scenastudio/site-backend/internal/core/ports"
)

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// upstreamHealthChecker probes a remote function endpoint. Any HTTP response
// counts as healthy; only transport failures and 5xx do not.
type upstreamHealthChecker struct {
	name   string
	url    string
	client *http.Client
}

func (u *upstreamHealthChecker) Name() string { return u.name }

func (u *upstreamHealthChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return err
	}
	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s unreachable: %w", u.name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("upstream %s returned %d", u.name, resp.StatusCode)
	}
	return nil
}

// NewUpstreamHealthChecker creates a health checker for a remote function.
func NewUpstreamHealthChecker(name, url string, client *http.Client) ports.HealthChecker {
	return &upstreamHealthChecker{name: name, url: url, client: client}
}
