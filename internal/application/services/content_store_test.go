package services_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	impl "github.com/scenastudio/site-backend/internal/application/services"
	"github.com/scenastudio/site-backend/internal/core/domain/content"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type contentAPIMock struct {
	listFn   func(ctx context.Context) ([]content.Entry, error)
	upsertFn func(ctx context.Context, key, value, token string) (*content.Entry, error)
}

func (m *contentAPIMock) List(ctx context.Context) ([]content.Entry, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *contentAPIMock) Get(ctx context.Context, key string) (*content.Entry, error) {
	return nil, errors.New("not found")
}

func (m *contentAPIMock) Upsert(ctx context.Context, key, value, token string) (*content.Entry, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, key, value, token)
	}
	return &content.Entry{Key: key, Value: value}, nil
}

func TestContentStore_GetDefaults(t *testing.T) {
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		return []content.Entry{{ID: 1, Key: "phone", Value: "+7 900"}}, nil
	}}
	store := impl.NewContentStoreService(api, testLogger())

	if got := store.Get("phone", "fallback"); got != "fallback" {
		t.Fatalf("before load every key falls back, got %q", got)
	}

	store.Load(context.Background())

	if got := store.Get("phone", "fallback"); got != "+7 900" {
		t.Fatalf("Get(phone) = %q", got)
	}
	if got := store.Get("missing", "fallback"); got != "fallback" {
		t.Fatalf("absent key must fall back, got %q", got)
	}
	if !store.Loaded() {
		t.Fatal("Loaded must be true after Load")
	}
}

func TestContentStore_LoadFailureDegrades(t *testing.T) {
	calls := 0
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		calls++
		if calls == 1 {
			return []content.Entry{{Key: "phone", Value: "+7 900"}}, nil
		}
		return nil, errors.New("upstream down")
	}}
	store := impl.NewContentStoreService(api, testLogger())

	store.Load(context.Background())
	store.Load(context.Background())

	// The failed reload keeps the previous cache.
	if got := store.Get("phone", ""); got != "+7 900" {
		t.Fatalf("cached value lost on failed reload: %q", got)
	}
	if !store.Loaded() {
		t.Fatal("store stays loaded after a failed reload")
	}
}

func TestContentStore_LoadFailureStillMarksLoaded(t *testing.T) {
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		return nil, errors.New("upstream down")
	}}
	store := impl.NewContentStoreService(api, testLogger())
	store.Load(context.Background())
	if !store.Loaded() {
		t.Fatal("a failed initial load must still unblock rendering")
	}
	if got := store.Get("phone", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}

func TestContentStore_UpdateOverlay(t *testing.T) {
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		return []content.Entry{{ID: 1, Key: "phone", Value: "old"}}, nil
	}}
	store := impl.NewContentStoreService(api, testLogger())
	store.Load(context.Background())

	store.Update("phone", "new")
	if got := store.Get("phone", ""); got != "new" {
		t.Fatalf("overlay not applied: %q", got)
	}

	store.Update("fresh_key", "v")
	if got := store.Get("fresh_key", ""); got != "v" {
		t.Fatalf("overlay must create missing keys: %q", got)
	}
}

func TestContentStore_EntriesSorted(t *testing.T) {
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		return []content.Entry{{Key: "zeta"}, {Key: "alpha"}, {Key: "mid"}}, nil
	}}
	store := impl.NewContentStoreService(api, testLogger())
	store.Load(context.Background())

	entries := store.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Key != "alpha" || entries[1].Key != "mid" || entries[2].Key != "zeta" {
		t.Fatalf("entries not sorted by key: %+v", entries)
	}
}

func TestContentStore_EmptyValueFallsBack(t *testing.T) {
	api := &contentAPIMock{listFn: func(ctx context.Context) ([]content.Entry, error) {
		return []content.Entry{{Key: "phone", Value: ""}}, nil
	}}
	store := impl.NewContentStoreService(api, testLogger())
	store.Load(context.Background())
	if got := store.Get("phone", "fallback"); got != "fallback" {
		t.Fatalf("empty stored value should fall back, got %q", got)
	}
}
