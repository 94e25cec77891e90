package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Redis     RedisConfig
	Email     EmailConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

// UpstreamConfig holds the endpoints of the remote serverless functions. The
// media function serves gallery, reviews, FAQ, blog, and team behind one URL,
// dispatched by the resource query parameter.
type UpstreamConfig struct {
	ContentURL        string
	MediaURL          string
	LeadsURL          string
	AuthURL           string
	ModulesURL        string
	WhatsAppURL       string
	WhatsAppSenderURL string
	MetrikaURL        string
	Timeout           time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

// EmailConfig configures lead notifications. An empty SendGridAPIKey disables
// them.
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	AdminEmail     string
	CompanyName    string
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

// RateLimitConfig bounds public lead submissions per client IP.
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstMultiplier   float64
	Window            time.Duration
	KeyPrefix         string
}

// CacheConfig sets the TTL for cached public media reads.
type CacheConfig struct {
	MediaTTL time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			Environment:    getEnv("ENVIRONMENT", "development"),
		},
		Upstream: UpstreamConfig{
			ContentURL:        getEnvRequired("CONTENT_FN_URL"),
			MediaURL:          getEnvRequired("MEDIA_FN_URL"),
			LeadsURL:          getEnvRequired("LEADS_FN_URL"),
			AuthURL:           getEnvRequired("AUTH_FN_URL"),
			ModulesURL:        getEnv("MODULES_FN_URL", ""),
			WhatsAppURL:       getEnv("WHATSAPP_FN_URL", ""),
			WhatsAppSenderURL: getEnv("WHATSAPP_SENDER_FN_URL", ""),
			MetrikaURL:        getEnv("METRIKA_FN_URL", ""),
			Timeout:           getDurationEnv("UPSTREAM_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Email: EmailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:      getEnv("FROM_EMAIL", "noreply@scenastudio.ru"),
			FromName:       getEnv("FROM_NAME", "Scena Studio"),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			CompanyName:    getEnv("COMPANY_NAME", "Школа актёрского мастерства"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getIntEnv("LEAD_RATE_LIMIT_RPM", 10),
			BurstMultiplier:   getFloatEnv("LEAD_RATE_LIMIT_BURST", 2.0),
			Window:            getDurationEnv("LEAD_RATE_LIMIT_WINDOW", time.Minute),
			KeyPrefix:         getEnv("LEAD_RATE_LIMIT_KEY_PREFIX", "ratelimit:lead"),
		},
		Cache: CacheConfig{
			MediaTTL: getDurationEnv("MEDIA_CACHE_TTL", 5*time.Minute),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
