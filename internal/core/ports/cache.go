package ports

import (
	"context"
	"time"
)

// Cache is a minimal byte-level key-value cache. Implementations degrade
// gracefully: an error from the cache must let callers fall through to the
// upstream source instead of failing the request.
type Cache interface {
	// Get returns the raw bytes for key; ok is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl (non-positive means no expiry
	// where the backend supports it).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key; absence is not an error.
	Delete(ctx context.Context, key string) error
}
