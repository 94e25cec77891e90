package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/scenastudio/site-backend/configs"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CONTENT_FN_URL", "https://functions.example/content")
	t.Setenv("MEDIA_FN_URL", "https://functions.example/media")
	t.Setenv("LEADS_FN_URL", "https://functions.example/leads")
	t.Setenv("AUTH_FN_URL", "https://functions.example/auth")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "https://functions.example/content", cfg.Upstream.ContentURL)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5*time.Minute, cfg.Cache.MediaTTL)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Email.SendGridAPIKey, "email notifications default to disabled")
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("LEAD_RATE_LIMIT_RPM", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://scenastudio.ru, https://admin.scenastudio.ru")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, []string{"https://scenastudio.ru", "https://admin.scenastudio.ru"}, cfg.Server.AllowedOrigins)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}
