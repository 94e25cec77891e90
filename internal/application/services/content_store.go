package services

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// ContentStoreService caches site content in memory. It is loaded once at
// startup and refreshed after admin edits; reads are lock-protected map
// lookups and never touch the network.
type ContentStoreService struct {
	api    ports.ContentAPI
	logger *logrus.Logger

	mu      sync.RWMutex
	values  map[string]content.Entry
	loaded  bool
	loadGen uint64
}

func NewContentStoreService(api ports.ContentAPI, logger *logrus.Logger) *ContentStoreService {
	return &ContentStoreService{
		api:    api,
		logger: logger,
		values: make(map[string]content.Entry),
	}
}

// Load fetches the full collection and replaces the cache. On failure the
// previous cache is kept, the error is logged, and the store is still marked
// loaded so callers render defaults instead of waiting.
func (s *ContentStoreService) Load(ctx context.Context) {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.mu.Unlock()

	entries, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A later load already started; its result supersedes this one.
	if gen != s.loadGen {
		return
	}
	s.loaded = true
	if err != nil {
		s.logger.WithError(err).Error("Failed to load site content, keeping cached values")
		return
	}
	fresh := make(map[string]content.Entry, len(entries))
	for _, e := range entries {
		fresh[e.Key] = e
	}
	s.values = fresh
	s.logger.WithField("entries", len(fresh)).Info("Site content loaded")
}

// Get returns the cached value for key, or def when the key is absent or has
// an empty value.
func (s *ContentStoreService) Get(key, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.values[key]; ok && e.Value != "" {
		return e.Value
	}
	return def
}

// Update overlays a value locally after a successful remote write.
func (s *ContentStoreService) Update(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.values[key]
	e.Key = key
	e.Value = value
	s.values[key] = e
}

// Refetch reconciles optimistic local edits with the remote source of truth.
func (s *ContentStoreService) Refetch(ctx context.Context) {
	s.Load(ctx)
}

// Entries returns the cached entries sorted by key.
func (s *ContentStoreService) Entries() []content.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]content.Entry, 0, len(s.values))
	for _, e := range s.values {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Loaded reports whether the initial load has completed.
func (s *ContentStoreService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
