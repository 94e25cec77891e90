package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/infrastructure/upstream"
)

// memCache is a trivial in-memory ports.Cache for decorator tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestCachingMediaClient_ReadThrough(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"id":1,"question":"Q","answer":"A"}]`))
	}))
	defer srv.Close()

	cache := newMemCache()
	api := upstream.NewCachingMediaClient(upstream.NewMediaClient(newTestClient(), srv.URL), cache, time.Minute)

	for i := 0; i < 3; i++ {
		faq, err := api.FAQ(context.Background())
		if err != nil {
			t.Fatalf("FAQ: %v", err)
		}
		if len(faq) != 1 || faq[0].Question != "Q" {
			t.Fatalf("faq = %+v", faq)
		}
	}
	if hits != 1 {
		t.Fatalf("upstream hit %d times, want 1", hits)
	}
}

func TestCachingMediaClient_WriteInvalidates(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			hits++
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{"id":2,"question":"Q2","answer":"A2"}`))
	}))
	defer srv.Close()

	cache := newMemCache()
	api := upstream.NewCachingMediaClient(upstream.NewMediaClient(newTestClient(), srv.URL), cache, time.Minute)

	if _, err := api.FAQ(context.Background()); err != nil {
		t.Fatalf("FAQ: %v", err)
	}
	if _, err := api.CreateFAQ(context.Background(), &media.FAQ{Question: "Q2", Answer: "A2"}, "tok"); err != nil {
		t.Fatalf("CreateFAQ: %v", err)
	}

	if _, err := api.FAQ(context.Background()); err != nil {
		t.Fatalf("FAQ after write: %v", err)
	}
	if hits != 2 {
		t.Fatalf("write must invalidate the cached list, upstream hits = %d", hits)
	}
}

func TestCachingMediaClient_NilCachePassesThrough(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	api := upstream.NewCachingMediaClient(upstream.NewMediaClient(newTestClient(), srv.URL), nil, time.Minute)
	for i := 0; i < 2; i++ {
		if _, err := api.Reviews(context.Background()); err != nil {
			t.Fatalf("Reviews: %v", err)
		}
	}
	if hits != 2 {
		t.Fatalf("without a cache every read goes upstream, hits = %d", hits)
	}
}
