package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// MediaServiceImpl serves public media reads and admin CRUD. The read path is
// expected to sit behind the caching decorators, so public pages tolerate
// upstream latency; admin writes go straight through.
type MediaServiceImpl struct {
	media   ports.MediaAPI
	modules ports.ModulesAPI
	logger  *logrus.Logger
}

func NewMediaService(mediaAPI ports.MediaAPI, modulesAPI ports.ModulesAPI, logger *logrus.Logger) ports.MediaService {
	return &MediaServiceImpl{media: mediaAPI, modules: modulesAPI, logger: logger}
}

func (s *MediaServiceImpl) GalleryImages(ctx context.Context) ([]media.GalleryImage, error) {
	return s.media.GalleryImages(ctx)
}

func (s *MediaServiceImpl) Reviews(ctx context.Context) ([]media.Review, error) {
	return s.media.Reviews(ctx)
}

func (s *MediaServiceImpl) FAQ(ctx context.Context) ([]media.FAQ, error) {
	return s.media.FAQ(ctx)
}

func (s *MediaServiceImpl) Team(ctx context.Context) ([]media.TeamMember, error) {
	return s.media.Team(ctx)
}

func (s *MediaServiceImpl) Modules(ctx context.Context) ([]course.Module, error) {
	return s.modules.List(ctx)
}

func (s *MediaServiceImpl) ModulesByCourse(ctx context.Context, courseType string) ([]course.Module, error) {
	return s.modules.ListByCourse(ctx, courseType)
}

func (s *MediaServiceImpl) CreateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	return s.media.CreateGalleryImage(ctx, img, token)
}

func (s *MediaServiceImpl) UpdateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	return s.media.UpdateGalleryImage(ctx, img, token)
}

func (s *MediaServiceImpl) DeleteGalleryImage(ctx context.Context, id int, token string) error {
	return s.media.DeleteGalleryImage(ctx, id, token)
}

func (s *MediaServiceImpl) CreateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	return s.media.CreateReview(ctx, r, token)
}

func (s *MediaServiceImpl) UpdateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	return s.media.UpdateReview(ctx, r, token)
}

func (s *MediaServiceImpl) DeleteReview(ctx context.Context, id int, token string) error {
	return s.media.DeleteReview(ctx, id, token)
}

func (s *MediaServiceImpl) CreateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	return s.media.CreateFAQ(ctx, f, token)
}

func (s *MediaServiceImpl) UpdateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	return s.media.UpdateFAQ(ctx, f, token)
}

func (s *MediaServiceImpl) DeleteFAQ(ctx context.Context, id int, token string) error {
	return s.media.DeleteFAQ(ctx, id, token)
}

func (s *MediaServiceImpl) CreateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	return s.media.CreateTeamMember(ctx, m, token)
}

func (s *MediaServiceImpl) UpdateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	return s.media.UpdateTeamMember(ctx, m, token)
}

func (s *MediaServiceImpl) DeleteTeamMember(ctx context.Context, id int, token string) error {
	return s.media.DeleteTeamMember(ctx, id, token)
}

func (s *MediaServiceImpl) CreateModule(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	return s.modules.Create(ctx, m, token)
}

func (s *MediaServiceImpl) UpdateModule(ctx context.Context, m *course.Module, token string) (*course.Module, error) {
	return s.modules.Update(ctx, m, token)
}

func (s *MediaServiceImpl) DeleteModule(ctx context.Context, id int, token string) error {
	return s.modules.Delete(ctx, id, token)
}
