package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/scenastudio/site-backend/configs"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// RateLimiterServiceImpl enforces a fixed-window limit per client IP on the
// public lead endpoint. The counter store failing is treated as fail-open:
// losing a few duplicate submissions is cheaper than losing real leads.
type RateLimiterServiceImpl struct {
	repo   ports.RateLimitRepository
	cfg    *config.RateLimitConfig
	logger *logrus.Logger
	limit  int
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *config.RateLimitConfig, logger *logrus.Logger) ports.RateLimiterService {
	limit := int(float64(cfg.RequestsPerMinute) * cfg.BurstMultiplier)
	if limit < cfg.RequestsPerMinute {
		limit = cfg.RequestsPerMinute
	}
	return &RateLimiterServiceImpl{repo: repo, cfg: cfg, logger: logger, limit: limit}
}

// Allow reports whether the request identified by key may proceed.
func (s *RateLimiterServiceImpl) Allow(ctx context.Context, key string) (bool, int, int, time.Time, error) {
	ttl := s.cfg.Window * 2
	count, reset, err := s.repo.IncrementWindow(ctx, key, s.cfg.Window, s.cfg.KeyPrefix, ttl)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Rate limit counter unavailable, allowing request")
		return true, s.limit, s.limit, time.Now().Add(s.cfg.Window), nil
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= s.limit, remaining, s.limit, reset, nil
}
