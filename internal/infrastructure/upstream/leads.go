package upstream

import (
	"context"
	"net/http"

	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// LeadsClient talks to the remote leads function. Creation is public;
// listing and status updates carry the operator token.
type LeadsClient struct {
	c   *Client
	url string
}

func NewLeadsClient(c *Client, url string) ports.LeadsAPI {
	return &LeadsClient{c: c, url: url}
}

func (lc *LeadsClient) List(ctx context.Context, token string) ([]lead.Lead, error) {
	raw, err := lc.c.doRaw(ctx, "leads", http.MethodGet, lc.url, nil, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[lead.Lead]("leads", raw)
}

func (lc *LeadsClient) Create(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error) {
	var l lead.Lead
	if err := lc.c.do(ctx, "leads", http.MethodPost, lc.url, nil, "", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (lc *LeadsClient) UpdateStatus(ctx context.Context, id int, status, token string) (*lead.Lead, error) {
	body := map[string]any{"id": id, "status": status}
	var l lead.Lead
	if err := lc.c.do(ctx, "leads", http.MethodPut, lc.url, nil, token, body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
