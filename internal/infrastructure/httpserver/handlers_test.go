package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/ports"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type contentStoreMock struct {
	getFn func(key, def string) string
}

func (m *contentStoreMock) Load(ctx context.Context) {}
func (m *contentStoreMock) Refetch(ctx context.Context) {}
func (m *contentStoreMock) Get(key, def string) string {
	if m.getFn != nil {
		return m.getFn(key, def)
	}
	return def
}
func (m *contentStoreMock) Update(key, value string) {}
func (m *contentStoreMock) Entries() []content.Entry { return nil }
func (m *contentStoreMock) Loaded() bool { return true }

type contentEditorMock struct{}

func (m *contentEditorMock) StartEditing(e content.Entry) {}
func (m *contentEditorMock) SetValue(value string) error { return nil }
func (m *contentEditorMock) Staged() (string, string, bool) { return "", "", false }
func (m *contentEditorMock) Cancel() {}
func (m *contentEditorMock) CanAdd(catalogKey, customKey string) bool { return true }
func (m *contentEditorMock) Update(ctx context.Context, token string) (*content.Entry, error) {
	return &content.Entry{}, nil
}
func (m *contentEditorMock) Add(ctx context.Context, token, catalogKey, customKey, value string) (*content.Entry, error) {
	return &content.Entry{}, nil
}
func (m *contentEditorMock) Sections() []content.Section { return nil }
func (m *contentEditorMock) Suggestions() []content.CatalogEntry { return nil }

type blogServiceMock struct {
	listPageFn  func(ctx context.Context, page int) *blog.PageView
	getBySlugFn func(ctx context.Context, slug string) (*blog.Post, error)
}

func (m *blogServiceMock) ListPage(ctx context.Context, page int) *blog.PageView {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, page)
	}
	v := blog.BuildPageView("/blog", page, blog.List{})
	return &v
}
func (m *blogServiceMock) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, blog.ErrNotFound
}
func (m *blogServiceMock) Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error) {
	return &blog.Post{ID: 1}, nil
}
func (m *blogServiceMock) Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error) {
	return &blog.Post{ID: id}, nil
}
func (m *blogServiceMock) Delete(ctx context.Context, id int, token string) error { return nil }
func (m *blogServiceMock) Generate(ctx context.Context, token string) (*blog.Post, error) {
	return &blog.Post{ID: 2}, nil
}

type leadServiceMock struct {
	createFn func(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error)
}

func (m *leadServiceMock) Create(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, lead.ErrPhoneRequired
	}
	return &lead.Lead{ID: 1, Phone: req.Phone}, nil
}
func (m *leadServiceMock) List(ctx context.Context, token string) ([]lead.Lead, error) {
	return []lead.Lead{}, nil
}
func (m *leadServiceMock) UpdateStatus(ctx context.Context, id int, status, token string) (*lead.Lead, error) {
	return &lead.Lead{ID: id, Status: status}, nil
}

type rateLimiterMock struct {
	allowFn func(ctx context.Context, key string) (bool, int, int, time.Time, error)
}

func (m *rateLimiterMock) Allow(ctx context.Context, key string) (bool, int, int, time.Time, error) {
	if m.allowFn != nil {
		return m.allowFn(ctx, key)
	}
	return true, 9, 10, time.Now().Add(time.Minute), nil
}

func newTestServer(deps httpserver.ServerDeps) *httpserver.Server {
	if deps.ContentStore == nil {
		deps.ContentStore = &contentStoreMock{}
	}
	if deps.ContentEditor == nil {
		deps.ContentEditor = &contentEditorMock{}
	}
	if deps.BlogService == nil {
		deps.BlogService = &blogServiceMock{}
	}
	if deps.LeadService == nil {
		deps.LeadService = &leadServiceMock{}
	}
	if deps.RateLimiterService == nil {
		deps.RateLimiterService = &rateLimiterMock{}
	}
	cfg := &httpserver.ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		AllowedOrigins: []string{"*"},
	}
	return httpserver.NewServer(cfg, testLogger(), deps)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/content/sections", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/content/sections", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d", rec.Code)
	}
}

func TestAdminTokenFallbackHeader(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/content/sections", nil)
	req.Header.Set("X-Auth-Token", "tok")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status with X-Auth-Token = %d", rec.Code)
	}
}

func TestBlogPostRedirectsWhenMissing(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{BlogService: &blogServiceMock{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/missing-slug", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog" {
		t.Fatalf("redirect target = %q", loc)
	}
}

func TestBlogPostRedirectsOnFetchFailure(t *testing.T) {
	svc := &blogServiceMock{getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
		return nil, errors.New("upstream timeout")
	}}
	srv := newTestServer(httpserver.ServerDeps{BlogService: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/some-slug", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/blog" {
		t.Fatalf("redirect target = %q", loc)
	}
}

func TestBlogPageParsesQuery(t *testing.T) {
	var gotPage int
	svc := &blogServiceMock{listPageFn: func(ctx context.Context, page int) *blog.PageView {
		gotPage = page
		v := blog.BuildPageView("/blog", page, blog.List{})
		return &v
	}}
	srv := newTestServer(httpserver.ServerDeps{BlogService: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blog?page=abc", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotPage != 1 {
		t.Fatalf("malformed page must parse to 1, got %d", gotPage)
	}
}

func TestCreateLead(t *testing.T) {
	srv := newTestServer(httpserver.ServerDeps{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("lead without phone = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"phone":"+7 900","source":"landing"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid lead = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestCreateLeadRateLimited(t *testing.T) {
	limiter := &rateLimiterMock{allowFn: func(ctx context.Context, key string) (bool, int, int, time.Time, error) {
		return false, 0, 10, time.Now().Add(time.Minute), nil
	}}
	srv := newTestServer(httpserver.ServerDeps{RateLimiterService: limiter})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"phone":"+7 900"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "10" {
		t.Fatalf("limit header = %q", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestGetContentDefault(t *testing.T) {
	store := &contentStoreMock{getFn: func(key, def string) string {
		if key == "phone" {
			return "+7 900"
		}
		return def
	}}
	srv := newTestServer(httpserver.ServerDeps{ContentStore: store})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/phone", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["value"] != "+7 900" {
		t.Fatalf("value = %q", resp["value"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/content/missing?default=fallback", nil)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["value"] != "fallback" {
		t.Fatalf("value = %q", resp["value"])
	}
}

var _ ports.ContentStore = (*contentStoreMock)(nil)
var _ ports.ContentEditor = (*contentEditorMock)(nil)
var _ ports.BlogService = (*blogServiceMock)(nil)
var _ ports.LeadService = (*leadServiceMock)(nil)
var _ ports.RateLimiterService = (*rateLimiterMock)(nil)
