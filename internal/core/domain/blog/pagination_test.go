package blog_test

import (
	"testing"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
)

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"abc":  1,
		"0":    1,
		"-3":   1,
		"1":    1,
		"7":    7,
		"7.5":  1,
		" 2":   1,
		"9999": 9999,
	}
	for raw, want := range cases {
		if got := blog.ParsePage(raw); got != want {
			t.Fatalf("ParsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	if got := blog.NormalizePage(5, 3); got != 3 {
		t.Fatalf("page beyond range should clamp to last page, got %d", got)
	}
	if got := blog.NormalizePage(0, 3); got != 1 {
		t.Fatalf("page below range should clamp to 1, got %d", got)
	}
	if got := blog.NormalizePage(2, 0); got != 1 {
		t.Fatalf("no pages should normalize to 1, got %d", got)
	}
	if got := blog.NormalizePage(2, 3); got != 2 {
		t.Fatalf("in-range page must pass through, got %d", got)
	}
}

func TestPagePath(t *testing.T) {
	if got := blog.PagePath("/blog", 1); got != "/blog" {
		t.Fatalf("page 1 must use the bare base path, got %q", got)
	}
	if got := blog.PagePath("/blog", 0); got != "/blog" {
		t.Fatalf("page 0 must use the bare base path, got %q", got)
	}
	if got := blog.PagePath("/blog", 3); got != "/blog?page=3" {
		t.Fatalf("got %q", got)
	}
}

func TestPageWindow_Centered(t *testing.T) {
	w := blog.PageWindow(5, 10)
	wantPages := []int{3, 4, 5, 6, 7}
	if len(w.Pages) != len(wantPages) {
		t.Fatalf("window = %v, want %v", w.Pages, wantPages)
	}
	for i, p := range wantPages {
		if w.Pages[i] != p {
			t.Fatalf("window = %v, want %v", w.Pages, wantPages)
		}
	}
	if !w.LeadingEllipsis || !w.TrailingEllipsis {
		t.Fatalf("a centered interior window needs ellipses on both sides: %+v", w)
	}
}

func TestPageWindow_ClampsAtEdges(t *testing.T) {
	// At the start the window shifts right instead of going below 1.
	w := blog.PageWindow(1, 10)
	if w.Pages[0] != 1 || w.Pages[len(w.Pages)-1] != 5 {
		t.Fatalf("window at start = %v", w.Pages)
	}
	if w.LeadingEllipsis {
		t.Fatal("no leading ellipsis when the window starts at page 1")
	}
	if !w.TrailingEllipsis {
		t.Fatal("expected trailing ellipsis with pages beyond the window")
	}

	// At the end the window shifts left instead of going past the last page.
	w = blog.PageWindow(10, 10)
	if w.Pages[0] != 6 || w.Pages[len(w.Pages)-1] != 10 {
		t.Fatalf("window at end = %v", w.Pages)
	}
	if !w.LeadingEllipsis || w.TrailingEllipsis {
		t.Fatalf("ellipsis flags wrong at end: %+v", w)
	}
}

func TestPageWindow_FewPages(t *testing.T) {
	w := blog.PageWindow(2, 3)
	if len(w.Pages) != 3 {
		t.Fatalf("window over 3 pages = %v", w.Pages)
	}
	if w.LeadingEllipsis || w.TrailingEllipsis {
		t.Fatalf("no ellipses when everything fits: %+v", w)
	}
}

func TestPageWindow_AlwaysContainsCurrentPage(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for page := 1; page <= total; page++ {
			w := blog.PageWindow(page, total)
			found := false
			for _, p := range w.Pages {
				if p == page {
					found = true
				}
			}
			if !found {
				t.Fatalf("window %v for page %d of %d misses the current page", w.Pages, page, total)
			}
			if len(w.Pages) > blog.WindowSize {
				t.Fatalf("window %v exceeds the size limit", w.Pages)
			}
		}
	}
}

func TestPageWindow_NoPages(t *testing.T) {
	w := blog.PageWindow(1, 0)
	if len(w.Pages) != 0 || w.LeadingEllipsis || w.TrailingEllipsis {
		t.Fatalf("empty blog should give an empty window, got %+v", w)
	}
}
