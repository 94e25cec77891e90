package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// ModulesClient talks to the remote course-modules function.
type ModulesClient struct {
	c   *Client
	url string
}

func NewModulesClient(c *Client, url string) ports.ModulesAPI {
	return &ModulesClient{c: c, url: url}
}

func (mc *ModulesClient) List(ctx context.Context) ([]course.Module, error) {
	raw, err := mc.c.doRaw(ctx, "modules", http.MethodGet, mc.url, nil, "", nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[course.Module]("modules", raw)
}

func (mc *ModulesClient) ListByCourse(ctx context.Context, courseType string) ([]course.Module, error) {
	q := url.Values{"course_type": {courseType}}
	raw, err := mc.c.doRaw(ctx, "modules", http.MethodGet, mc.url, q, "", nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[course.Module]("modules", raw)
}

func (mc *ModulesClient) Create(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	var out course.Module
	if err := mc.c.do(ctx, "modules", http.MethodPost, mc.url, nil, token, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *ModulesClient) Update(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	var out course.Module
	if err := mc.c.do(ctx, "modules", http.MethodPut, mc.url, nil, token, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *ModulesClient) Delete(ctx context.Context, id int, token string) error {
	body := map[string]any{"id": id}
	return mc.c.do(ctx, "modules", http.MethodDelete, mc.url, nil, token, body, nil)
}
