package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/scenastudio/site-backend/internal/core/ports"
)

// AuthClient proxies credentials to the remote authentication function. The
// response body (token, error detail) is opaque and returned verbatim.
type AuthClient struct {
	c   *Client
	url string
}

func NewAuthClient(c *Client, url string) ports.AuthAPI {
	return &AuthClient{c: c, url: url}
}

func (ac *AuthClient) Login(ctx context.Context, username, password string) (json.RawMessage, error) {
	return ac.action(ctx, "login", username, password)
}

func (ac *AuthClient) Register(ctx context.Context, username, password string) (json.RawMessage, error) {
	return ac.action(ctx, "register", username, password)
}

func (ac *AuthClient) action(ctx context.Context, action, username, password string) (json.RawMessage, error) {
	body := map[string]string{"action": action, "username": username, "password": password}
	raw, err := ac.c.doRaw(ctx, "auth", http.MethodPost, ac.url, nil, "", body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
