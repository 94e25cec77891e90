package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// ContentClient talks to the remote content function: a flat collection of
// key/value entries with an upsert-by-key write.
type ContentClient struct {
	c   *Client
	url string
}

func NewContentClient(c *Client, url string) ports.ContentAPI {
	return &ContentClient{c: c, url: url}
}

func (cc *ContentClient) List(ctx context.Context) ([]content.Entry, error) {
	raw, err := cc.c.doRaw(ctx, "content", http.MethodGet, cc.url, nil, "", nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[content.Entry]("content", raw)
}

func (cc *ContentClient) Get(ctx context.Context, key string) (*content.Entry, error) {
	q := url.Values{"key": {key}}
	var e content.Entry
	if err := cc.c.do(ctx, "content", http.MethodGet, cc.url, q, "", nil, &e); err != nil {
		return nil, err
	}
	if e.Key == "" {
		return nil, fmt.Errorf("content entry %q not found", key)
	}
	return &e, nil
}

func (cc *ContentClient) Upsert(ctx context.Context, key, value, token string) (*content.Entry, error) {
	req := content.UpsertRequest{Key: key, Value: value}
	var e content.Entry
	if err := cc.c.do(ctx, "content", http.MethodPut, cc.url, nil, token, &req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
