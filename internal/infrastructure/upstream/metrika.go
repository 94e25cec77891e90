package upstream

import (
	"context"
	"net/http"

	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// MetrikaClient reports offline conversions to the remote Yandex Metrika
// bridge function.
type MetrikaClient struct {
	c   *Client
	url string
}

func NewMetrikaClient(c *Client, url string) ports.ConversionAPI {
	return &MetrikaClient{c: c, url: url}
}

func (mc *MetrikaClient) Send(ctx context.Context, conv *lead.Conversion) error {
	return mc.c.do(ctx, "metrika", http.MethodPost, mc.url, nil, "", conv, nil)
}
