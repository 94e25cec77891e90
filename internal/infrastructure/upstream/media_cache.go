package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

var sf singleflight.Group

// Utility helpers
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheDeleteSilently(c ports.Cache, ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	for _, k := range keys {
		_ = c.Delete(ctx, k)
	}
}

// loadListWithSingleflight coalesces a full-list load: concurrent public page
// renders for the same resource share one upstream request, and the result is
// cached for ttl.
func loadListWithSingleflight[T any](cache ports.Cache, ctx context.Context, key string, ttl time.Duration, loader func() ([]T, error)) ([]T, error) {
	get := func() ([]T, bool) {
		if cache == nil {
			return nil, false
		}
		b, ok, err := cache.Get(ctx, key)
		if err != nil || !ok {
			return nil, false
		}
		var v []T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, false
		}
		return v, true
	}
	if v, ok := get(); ok {
		return v, nil
	}
	res, err, _ := sf.Do(key, func() (any, error) {
		if v, ok := get(); ok {
			return v, nil
		}
		all, err := loader()
		if err != nil {
			return nil, err
		}
		cacheSetSilently(cache, ctx, key, all, ttl)
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	all, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return all, nil
}

// CachingMediaClient decorates a MediaAPI with cache-aside reads. Writes pass
// through and invalidate the affected list.
type CachingMediaClient struct {
	inner ports.MediaAPI
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingMediaClient(inner ports.MediaAPI, cache ports.Cache, ttl time.Duration) ports.MediaAPI {
	return &CachingMediaClient{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingMediaClient) GalleryImages(ctx context.Context) ([]media.GalleryImage, error) {
	return loadListWithSingleflight(c.cache, ctx, "media:gallery", c.ttl, func() ([]media.GalleryImage, error) {
		return c.inner.GalleryImages(ctx)
	})
}

func (c *CachingMediaClient) CreateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	out, err := c.inner.CreateGalleryImage(ctx, img, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:gallery")
	}
	return out, err
}

func (c *CachingMediaClient) UpdateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	out, err := c.inner.UpdateGalleryImage(ctx, img, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:gallery")
	}
	return out, err
}

func (c *CachingMediaClient) DeleteGalleryImage(ctx context.Context, id int, token string) error {
	err := c.inner.DeleteGalleryImage(ctx, id, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:gallery")
	}
	return err
}

func (c *CachingMediaClient) Reviews(ctx context.Context) ([]media.Review, error) {
	return loadListWithSingleflight(c.cache, ctx, "media:reviews", c.ttl, func() ([]media.Review, error) {
		return c.inner.Reviews(ctx)
	})
}

func (c *CachingMediaClient) CreateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	out, err := c.inner.CreateReview(ctx, r, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:reviews")
	}
	return out, err
}

func (c *CachingMediaClient) UpdateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	out, err := c.inner.UpdateReview(ctx, r, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:reviews")
	}
	return out, err
}

func (c *CachingMediaClient) DeleteReview(ctx context.Context, id int, token string) error {
	err := c.inner.DeleteReview(ctx, id, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:reviews")
	}
	return err
}

func (c *CachingMediaClient) FAQ(ctx context.Context) ([]media.FAQ, error) {
	return loadListWithSingleflight(c.cache, ctx, "media:faq", c.ttl, func() ([]media.FAQ, error) {
		return c.inner.FAQ(ctx)
	})
}

func (c *CachingMediaClient) CreateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	out, err := c.inner.CreateFAQ(ctx, f, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:faq")
	}
	return out, err
}

func (c *CachingMediaClient) UpdateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	out, err := c.inner.UpdateFAQ(ctx, f, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:faq")
	}
	return out, err
}

func (c *CachingMediaClient) DeleteFAQ(ctx context.Context, id int, token string) error {
	err := c.inner.DeleteFAQ(ctx, id, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:faq")
	}
	return err
}

func (c *CachingMediaClient) Team(ctx context.Context) ([]media.TeamMember, error) {
	return loadListWithSingleflight(c.cache, ctx, "media:team", c.ttl, func() ([]media.TeamMember, error) {
		return c.inner.Team(ctx)
	})
}

func (c *CachingMediaClient) CreateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	out, err := c.inner.CreateTeamMember(ctx, m, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:team")
	}
	return out, err
}

func (c *CachingMediaClient) UpdateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	out, err := c.inner.UpdateTeamMember(ctx, m, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:team")
	}
	return out, err
}

func (c *CachingMediaClient) DeleteTeamMember(ctx context.Context, id int, token string) error {
	err := c.inner.DeleteTeamMember(ctx, id, token)
	if err == nil {
		cacheDeleteSilently(c.cache, ctx, "media:team")
	}
	return err
}

// CachingModulesClient decorates a ModulesAPI with cache-aside reads.
type CachingModulesClient struct {
	inner ports.ModulesAPI
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingModulesClient(inner ports.ModulesAPI, cache ports.Cache, ttl time.Duration) ports.ModulesAPI {
	return &CachingModulesClient{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingModulesClient) List(ctx context.Context) ([]course.Module, error) {
	return loadListWithSingleflight(c.cache, ctx, "modules:all", c.ttl, func() ([]course.Module, error) {
		return c.inner.List(ctx)
	})
}

func (c *CachingModulesClient) ListByCourse(ctx context.Context, courseType string) ([]course.Module, error) {
	return loadListWithSingleflight(c.cache, ctx, "modules:course:"+courseType, c.ttl, func() ([]course.Module, error) {
		return c.inner.ListByCourse(ctx, courseType)
	})
}

// invalidateModules drops every cached module list. Course-scoped keys are
// unknown here, so the whole namespace is cleared via the known course types.
func (c *CachingModulesClient) invalidate(ctx context.Context, courseType string) {
	cacheDeleteSilently(c.cache, ctx, "modules:all")
	if courseType != "" {
		cacheDeleteSilently(c.cache, ctx, "modules:course:"+courseType)
	}
}

func (c *CachingModulesClient) Create(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	out, err := c.inner.Create(ctx, m, token)
	if err == nil {
		c.invalidate(ctx, m.CourseType)
	}
	return out, err
}

func (c *CachingModulesClient) Update(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	out, err := c.inner.Update(ctx, m, token)
	if err == nil {
		c.invalidate(ctx, m.CourseType)
	}
	return out, err
}

func (c *CachingModulesClient) Delete(ctx context.Context, id int, token string) error {
	err := c.inner.Delete(ctx, id, token)
	if err == nil {
		c.invalidate(ctx, "")
	}
	return err
}
