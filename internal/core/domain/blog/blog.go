package blog

import "errors"

// PerPage is the page size of the public blog listing.
const PerPage = 12

// ErrNotFound is returned when no post exists for a requested slug.
var ErrNotFound = errors.New("blog post not found")

// Post is a blog article as served by the remote blog resource. Timestamps
// stay raw strings: the upstream serializes them in a non-RFC3339 format and
// they are display-only here. Content is trusted, pre-sanitized HTML.
type Post struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug,omitempty"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Author        string `json:"author,omitempty"`
	Published     bool   `json:"published,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// List is one page of posts as returned by the remote blog resource.
type List struct {
	Items      []Post `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page,omitempty"`
	PerPage    int    `json:"per_page,omitempty"`
	TotalPages int    `json:"total_pages"`
}

// CreateRequest is the body of an admin post creation. A missing slug is
// derived from the title by the remote function.
type CreateRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug,omitempty"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Published bool   `json:"published"`
}

// UpdateRequest is the body of an admin post update.
type UpdateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
