package blog_test

import (
	"testing"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
)

func TestBuildPageView_MiddlePage(t *testing.T) {
	list := blog.List{
		Items:      []blog.Post{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
		Total:      50,
		TotalPages: 5,
	}
	v := blog.BuildPageView("/blog", 3, list)

	if v.Empty != blog.EmptyNone {
		t.Fatalf("page with posts must not be empty, got %q", v.Empty)
	}
	if v.PrevPage != 2 || v.NextPage != 4 {
		t.Fatalf("prev/next = %d/%d", v.PrevPage, v.NextPage)
	}
	if v.Canonical != "/blog?page=3" {
		t.Fatalf("canonical = %q", v.Canonical)
	}
	if v.PerPage != blog.PerPage {
		t.Fatalf("per_page = %d", v.PerPage)
	}
}

func TestBuildPageView_FirstAndLastPage(t *testing.T) {
	list := blog.List{Items: []blog.Post{{ID: 1}}, Total: 13, TotalPages: 2}

	first := blog.BuildPageView("/blog", 1, list)
	if first.PrevPage != 0 {
		t.Fatalf("first page must have no prev link, got %d", first.PrevPage)
	}
	if first.NextPage != 2 {
		t.Fatalf("first page next = %d", first.NextPage)
	}
	if first.Canonical != "/blog" {
		t.Fatalf("first page canonical = %q", first.Canonical)
	}

	last := blog.BuildPageView("/blog", 2, list)
	if last.NextPage != 0 {
		t.Fatalf("last page must have no next link, got %d", last.NextPage)
	}
	if last.PrevPage != 1 {
		t.Fatalf("last page prev = %d", last.PrevPage)
	}
}

func TestBuildPageView_NoPosts(t *testing.T) {
	v := blog.BuildPageView("/blog", 1, blog.List{})
	if v.Empty != blog.EmptyNoPosts {
		t.Fatalf("empty blog on page 1 should be %q, got %q", blog.EmptyNoPosts, v.Empty)
	}
	if v.BackPath != "" {
		t.Fatalf("no back link on the first page, got %q", v.BackPath)
	}
	if v.Posts == nil {
		t.Fatal("posts must serialize as an empty array, not null")
	}
}

func TestBuildPageView_OutOfRange(t *testing.T) {
	// Page 3 of a two-page blog: no items come back for it.
	v := blog.BuildPageView("/blog", 3, blog.List{Total: 13, TotalPages: 2})
	if v.Empty != blog.EmptyOutOfRange {
		t.Fatalf("expected %q, got %q", blog.EmptyOutOfRange, v.Empty)
	}
	if v.BackPath != "/blog" {
		t.Fatalf("out-of-range page must link back to the listing, got %q", v.BackPath)
	}
}

func TestBuildPageView_NonPositivePage(t *testing.T) {
	v := blog.BuildPageView("/blog", 0, blog.List{Items: []blog.Post{{ID: 1}}, Total: 1, TotalPages: 1})
	if v.Page != 1 {
		t.Fatalf("non-positive page should render as page 1, got %d", v.Page)
	}
}
