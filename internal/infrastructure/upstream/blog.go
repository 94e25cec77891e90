package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// BlogClient talks to the blog resource of the remote media function. Reads
// are public; writes carry the operator token and are validated remotely.
type BlogClient struct {
	c   *Client
	url string
}

func NewBlogClient(c *Client, url string) ports.BlogAPI {
	return &BlogClient{c: c, url: url}
}

func (bc *BlogClient) ListPage(ctx context.Context, page, perPage int) (*blog.List, error) {
	q := url.Values{
		"resource": {"blog"},
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
	var list blog.List
	if err := bc.c.do(ctx, "blog", http.MethodGet, bc.url, q, "", nil, &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []blog.Post{}
	}
	return &list, nil
}

// GetBySlug resolves a single post. The remote function answers with an array
// of zero or one posts; an empty array maps to blog.ErrNotFound.
func (bc *BlogClient) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	q := url.Values{"resource": {"blog"}, "slug": {slug}}
	raw, err := bc.c.doRaw(ctx, "blog", http.MethodGet, bc.url, q, "", nil)
	if err != nil {
		return nil, err
	}
	posts, err := decodeArray[blog.Post]("blog", raw)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, blog.ErrNotFound
	}
	return &posts[0], nil
}

func (bc *BlogClient) Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error) {
	body := map[string]any{
		"resource":  "blog",
		"title":     req.Title,
		"slug":      req.Slug,
		"content":   req.Content,
		"excerpt":   req.Excerpt,
		"image_url": req.ImageURL,
		"published": req.Published,
	}
	var p blog.Post
	if err := bc.c.do(ctx, "blog", http.MethodPost, bc.url, nil, token, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (bc *BlogClient) Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error) {
	body := map[string]any{
		"resource":  "blog",
		"id":        id,
		"title":     req.Title,
		"content":   req.Content,
		"excerpt":   req.Excerpt,
		"image_url": req.ImageURL,
	}
	var p blog.Post
	if err := bc.c.do(ctx, "blog", http.MethodPut, bc.url, nil, token, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (bc *BlogClient) Delete(ctx context.Context, id int, token string) error {
	body := map[string]any{"resource": "blog", "id": id}
	return bc.c.do(ctx, "blog", http.MethodDelete, bc.url, nil, token, body, nil)
}

// Generate asks the media function to trigger the auto-blog pipeline and
// returns the generated post.
func (bc *BlogClient) Generate(ctx context.Context, token string) (*blog.Post, error) {
	body := map[string]any{"resource": "blog", "action": "generate"}
	var p blog.Post
	if err := bc.c.do(ctx, "blog", http.MethodPost, bc.url, nil, token, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
