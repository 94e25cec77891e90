package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of an upstream error body is kept in messages.
const maxErrorBody = 2048

// authHeader carries the operator token to the remote functions.
const authHeader = "X-Auth-Token"

// Client is the shared transport under the typed per-function clients. Every
// request is tagged with a correlation id and recorded in upstream metrics.
// There are no retries: a failure is terminal for that attempt.
type Client struct {
	http   *http.Client
	logger *logrus.Logger
}

// NewClient builds the shared transport with a per-request timeout.
func NewClient(timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Resource string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: unexpected status %d: %s", e.Resource, e.Status, e.Body)
}

// do performs one JSON request against a remote function. resource names the
// logical upstream for logs and metrics; token, query, and body may be empty.
// A non-nil out receives the decoded JSON response.
func (c *Client) do(ctx context.Context, resource, method, rawURL string, query url.Values, token string, body, out any) error {
	raw, err := c.doRaw(ctx, resource, method, rawURL, query, token, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("upstream %s: decode response: %w", resource, err)
	}
	return nil
}

// doRaw is do without response decoding; it returns the raw response bytes.
func (c *Client) doRaw(ctx context.Context, resource, method, rawURL string, query url.Values, token string, body any) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: bad url: %w", resource, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("upstream %s: encode request: %w", resource, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: build request: %w", resource, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authHeader, token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observeUpstream(resource, method, "error", time.Since(start))
		return nil, fmt.Errorf("upstream %s: %s request failed: %w", resource, method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	observeUpstream(resource, method, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("upstream %s: read response: %w", resource, err)
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"resource": resource,
			"method":   method,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		}).Debug("upstream request completed")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(raw)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &StatusError{Resource: resource, Status: resp.StatusCode, Body: msg}
	}
	return raw, nil
}

// decodeArray decodes a JSON array tolerantly: any payload that is not an
// array (an error object, null, an empty body) yields an empty slice, so
// collection reads degrade instead of failing on malformed upstream output.
func decodeArray[T any](resource string, raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("upstream %s: decode list: %w", resource, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
