package services_test

import (
	"context"
	"errors"
	"testing"

	impl "github.com/scenastudio/site-backend/internal/application/services"
	"github.com/scenastudio/site-backend/internal/core/domain/blog"
)

type blogAPIMock struct {
	listPageFn  func(ctx context.Context, page, perPage int) (*blog.List, error)
	getBySlugFn func(ctx context.Context, slug string) (*blog.Post, error)
}

func (m *blogAPIMock) ListPage(ctx context.Context, page, perPage int) (*blog.List, error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, page, perPage)
	}
	return &blog.List{}, nil
}

func (m *blogAPIMock) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, blog.ErrNotFound
}

func (m *blogAPIMock) Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error) {
	return &blog.Post{ID: 1, Title: req.Title}, nil
}

func (m *blogAPIMock) Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error) {
	return &blog.Post{ID: id, Title: req.Title}, nil
}

func (m *blogAPIMock) Delete(ctx context.Context, id int, token string) error { return nil }

func (m *blogAPIMock) Generate(ctx context.Context, token string) (*blog.Post, error) {
	return &blog.Post{ID: 99}, nil
}

func TestBlogListPage_PassesPageSize(t *testing.T) {
	api := &blogAPIMock{listPageFn: func(ctx context.Context, page, perPage int) (*blog.List, error) {
		if page != 2 || perPage != blog.PerPage {
			t.Fatalf("fetch with page=%d per_page=%d", page, perPage)
		}
		return &blog.List{Items: []blog.Post{{ID: 1}}, Total: 20, TotalPages: 2}, nil
	}}
	svc := impl.NewBlogService(api, testLogger())

	v := svc.ListPage(context.Background(), 2)
	if v.Page != 2 || len(v.Posts) != 1 {
		t.Fatalf("view = %+v", v)
	}
}

func TestBlogListPage_DegradesOnError(t *testing.T) {
	api := &blogAPIMock{listPageFn: func(ctx context.Context, page, perPage int) (*blog.List, error) {
		return nil, errors.New("upstream down")
	}}
	svc := impl.NewBlogService(api, testLogger())

	v := svc.ListPage(context.Background(), 1)
	if v == nil {
		t.Fatal("ListPage must never return nil")
	}
	if v.Empty != blog.EmptyNoPosts {
		t.Fatalf("failed fetch on page 1 renders the no-posts branch, got %q", v.Empty)
	}

	v = svc.ListPage(context.Background(), 3)
	if v.Empty != blog.EmptyOutOfRange || v.BackPath != "/blog" {
		t.Fatalf("failed fetch on a later page renders the out-of-range branch: %+v", v)
	}
}

func TestBlogListPage_NormalizesPage(t *testing.T) {
	api := &blogAPIMock{listPageFn: func(ctx context.Context, page, perPage int) (*blog.List, error) {
		if page != 1 {
			t.Fatalf("non-positive input must fetch page 1, got %d", page)
		}
		return &blog.List{}, nil
	}}
	svc := impl.NewBlogService(api, testLogger())
	svc.ListPage(context.Background(), -5)
}

func TestBlogGetBySlug(t *testing.T) {
	api := &blogAPIMock{getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
		if slug == "hello" {
			return &blog.Post{ID: 7, Slug: "hello"}, nil
		}
		return nil, blog.ErrNotFound
	}}
	svc := impl.NewBlogService(api, testLogger())

	post, err := svc.GetBySlug(context.Background(), "hello")
	if err != nil || post.ID != 7 {
		t.Fatalf("post=%+v err=%v", post, err)
	}
	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, blog.ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}
