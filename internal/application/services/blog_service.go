package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// blogBasePath is the public path of the blog listing; page links and the
// out-of-range back link are built from it.
const blogBasePath = "/blog"

// BlogServiceImpl serves the public blog pages and the admin post surface.
type BlogServiceImpl struct {
	api    ports.BlogAPI
	logger *logrus.Logger
}

func NewBlogService(api ports.BlogAPI, logger *logrus.Logger) ports.BlogService {
	return &BlogServiceImpl{api: api, logger: logger}
}

// ListPage builds the listing view for a 1-based page. A failed upstream fetch
// degrades to the empty view for that page; the error is logged, not returned.
func (s *BlogServiceImpl) ListPage(ctx context.Context, page int) *blog.PageView {
	if page < 1 {
		page = 1
	}
	list, err := s.api.ListPage(ctx, page, blog.PerPage)
	if err != nil {
		s.logger.WithError(err).WithField("page", page).Error("Failed to fetch blog page")
		list = &blog.List{}
	}
	v := blog.BuildPageView(blogBasePath, page, *list)
	return &v
}

func (s *BlogServiceImpl) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return s.api.GetBySlug(ctx, slug)
}

func (s *BlogServiceImpl) Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error) {
	return s.api.Create(ctx, req, token)
}

func (s *BlogServiceImpl) Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error) {
	return s.api.Update(ctx, id, req, token)
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id int, token string) error {
	return s.api.Delete(ctx, id, token)
}

func (s *BlogServiceImpl) Generate(ctx context.Context, token string) (*blog.Post, error) {
	return s.api.Generate(ctx, token)
}
