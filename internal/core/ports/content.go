package ports

import (
	"context"

	"github.com/scenastudio/site-backend/internal/core/domain/content"
)

// ContentStore is the process-wide cache of site content. It is populated
// once at startup and shields the rest of the service from the network: reads
// never fail, absent keys fall back to defaults.
type ContentStore interface {
	// Load fetches the full collection and replaces the cache wholesale.
	// Failures are logged and degrade to an unchanged cache; they never
	// propagate to the caller.
	Load(ctx context.Context)
	// Get returns the cached value for key, or def when the key is absent.
	Get(key, def string) string
	// Update overlays a value locally without touching the remote endpoint.
	// Callers invoke it right after a successful remote write.
	Update(key, value string)
	// Refetch re-runs Load to reconcile optimistic edits with the remote
	// source of truth.
	Refetch(ctx context.Context)
	// Entries returns the cached entries sorted by key.
	Entries() []content.Entry
	// Loaded reports whether the initial load has completed (successfully
	// or not), so callers can render fallbacks instead of waiting.
	Loaded() bool
}

// ContentEditor drives the admin editing workflow: staging an entry, updating
// its value remotely, and creating entries for catalog or custom keys.
type ContentEditor interface {
	StartEditing(e content.Entry)
	SetValue(value string) error
	Staged() (key, value string, ok bool)
	Cancel()
	Update(ctx context.Context, token string) (*content.Entry, error)
	Add(ctx context.Context, token, catalogKey, customKey, value string) (*content.Entry, error)
	CanAdd(catalogKey, customKey string) bool
	Sections() []content.Section
	Suggestions() []content.CatalogEntry
}
