package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

var (
	// ErrNoStagedEntry is returned when Update is called with nothing staged.
	ErrNoStagedEntry = errors.New("no entry is being edited")
	// ErrAddInFlight rejects a second Add while one is still running.
	ErrAddInFlight = errors.New("an add operation is already in progress")
	// ErrEmptyKey rejects an Add with neither a catalog key nor a custom key.
	ErrEmptyKey = errors.New("content key must not be empty")
)

// ContentEditorService drives the admin content workflow: one entry staged at
// a time, remote upsert on save, and the local store overlaid optimistically
// then reconciled with a refetch.
type ContentEditorService struct {
	api    ports.ContentAPI
	store  ports.ContentStore
	logger *logrus.Logger

	mu          sync.Mutex
	stagedKey   string
	stagedValue string
	staged      bool
	adding      bool
}

func NewContentEditorService(api ports.ContentAPI, store ports.ContentStore, logger *logrus.Logger) *ContentEditorService {
	return &ContentEditorService{api: api, store: store, logger: logger}
}

// StartEditing stages an entry, replacing any previous staging.
func (s *ContentEditorService) StartEditing(e content.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stagedKey = e.Key
	s.stagedValue = e.Value
	s.staged = true
}

// SetValue replaces the staged value.
func (s *ContentEditorService) SetValue(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.staged {
		return ErrNoStagedEntry
	}
	s.stagedValue = value
	return nil
}

// Staged returns the staged key and value, if any.
func (s *ContentEditorService) Staged() (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stagedKey, s.stagedValue, s.staged
}

// Cancel discards the staged entry.
func (s *ContentEditorService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stagedKey, s.stagedValue, s.staged = "", "", false
}

// Update writes the staged value upstream, overlays it on the local store,
// clears the staging, and refetches to reconcile.
func (s *ContentEditorService) Update(ctx context.Context, token string) (*content.Entry, error) {
	s.mu.Lock()
	if !s.staged {
		s.mu.Unlock()
		return nil, ErrNoStagedEntry
	}
	key, value := s.stagedKey, s.stagedValue
	s.mu.Unlock()

	entry, err := s.api.Upsert(ctx, key, value, token)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to update content entry")
		return nil, err
	}

	s.store.Update(key, value)
	s.Cancel()
	s.store.Refetch(ctx)

	return entry, nil
}

// Add creates a new entry for either a catalog key or a custom key. The
// custom key wins when both are supplied. Concurrent adds are rejected.
func (s *ContentEditorService) Add(ctx context.Context, token, catalogKey, customKey, value string) (*content.Entry, error) {
	key := effectiveKey(catalogKey, customKey)
	if key == "" {
		return nil, ErrEmptyKey
	}

	s.mu.Lock()
	if s.adding {
		s.mu.Unlock()
		return nil, ErrAddInFlight
	}
	s.adding = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.adding = false
		s.mu.Unlock()
	}()

	entry, err := s.api.Upsert(ctx, key, value, token)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to add content entry")
		return nil, err
	}

	s.store.Update(key, value)
	s.store.Refetch(ctx)

	return entry, nil
}

// CanAdd reports whether an Add with these keys would be accepted right now.
func (s *ContentEditorService) CanAdd(catalogKey, customKey string) bool {
	if effectiveKey(catalogKey, customKey) == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.adding
}

// Sections partitions the store's entries into category sections.
func (s *ContentEditorService) Sections() []content.Section {
	return content.Partition(s.store.Entries())
}

// Suggestions lists catalog keys that have no stored entry yet.
func (s *ContentEditorService) Suggestions() []content.CatalogEntry {
	existing := make(map[string]bool)
	for _, e := range s.store.Entries() {
		existing[e.Key] = true
	}
	var out []content.CatalogEntry
	for _, c := range content.Catalog() {
		if !existing[c.Key] {
			out = append(out, c)
		}
	}
	return out
}

func effectiveKey(catalogKey, customKey string) string {
	if k := strings.TrimSpace(customKey); k != "" {
		return k
	}
	return strings.TrimSpace(catalogKey)
}
