package blog

import (
	"fmt"
	"strconv"
)

// WindowSize is the maximum number of numbered page links shown at once.
const WindowSize = 5

// Window is the set of numbered page links to render, plus whether an
// ellipsis is needed on either side.
type Window struct {
	Pages            []int `json:"pages"`
	LeadingEllipsis  bool  `json:"leading_ellipsis"`
	TrailingEllipsis bool  `json:"trailing_ellipsis"`
}

// ParsePage turns a raw query-parameter value into a 1-based page number.
// Missing, malformed, or non-positive input yields page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NormalizePage clamps a requested page into [1, totalPages]. With no pages
// at all the result is 1.
func NormalizePage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PagePath builds the canonical listing path for a page. Page 1 is the bare
// base path with no query parameter, so the first page has a single canonical
// URL.
func PagePath(base string, page int) string {
	if page <= 1 {
		return base
	}
	return fmt.Sprintf("%s?page=%d", base, page)
}

// PageWindow computes the numbered links around page, at most WindowSize of
// them, kept inside [1, totalPages] and centered on the current page where
// possible. The current page is always part of the window.
func PageWindow(page, totalPages int) Window {
	if totalPages < 1 {
		return Window{}
	}
	page = NormalizePage(page, totalPages)

	start := page - WindowSize/2
	if start > totalPages-WindowSize+1 {
		start = totalPages - WindowSize + 1
	}
	if start < 1 {
		start = 1
	}
	end := start + WindowSize - 1
	if end > totalPages {
		end = totalPages
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return Window{
		Pages:            pages,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < totalPages,
	}
}
