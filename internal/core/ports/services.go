package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/core/domain/messaging"
)

// BlogService backs the public blog pages and the admin post surface.
type BlogService interface {
	// ListPage builds the listing view for a 1-based page. A failed fetch
	// degrades to the empty view; it never returns an error.
	ListPage(ctx context.Context, page int) *blog.PageView
	GetBySlug(ctx context.Context, slug string) (*blog.Post, error)
	Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error)
	Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error)
	Delete(ctx context.Context, id int, token string) error
	Generate(ctx context.Context, token string) (*blog.Post, error)
}

// LeadService handles public lead intake and the admin lead workflow.
type LeadService interface {
	Create(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error)
	List(ctx context.Context, token string) ([]lead.Lead, error)
	UpdateStatus(ctx context.Context, id int, status, token string) (*lead.Lead, error)
}

// MediaService serves the cached public reads and admin CRUD for gallery
// images, reviews, FAQ, team members, and course modules.
type MediaService interface {
	GalleryImages(ctx context.Context) ([]media.GalleryImage, error)
	Reviews(ctx context.Context) ([]media.Review, error)
	FAQ(ctx context.Context) ([]media.FAQ, error)
	Team(ctx context.Context) ([]media.TeamMember, error)
	Modules(ctx context.Context) ([]course.Module, error)
	ModulesByCourse(ctx context.Context, courseType string) ([]course.Module, error)

	CreateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int, token string) error
	CreateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error)
	UpdateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error)
	DeleteReview(ctx context.Context, id int, token string) error
	CreateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error)
	UpdateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error)
	DeleteFAQ(ctx context.Context, id int, token string) error
	CreateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int, token string) error
	CreateModule(ctx context.Context, m *course.Module, token string) (*course.Module, error)
	UpdateModule(ctx context.Context, m *course.Module, token string) (*course.Module, error)
	DeleteModule(ctx context.Context, id int, token string) error
}

// MessagingService is the admin surface over the WhatsApp queue.
type MessagingService interface {
	Queue(ctx context.Context, token, status string) ([]messaging.QueueItem, error)
	DeleteQueueItem(ctx context.Context, id int, token string) error
	DeleteQueueByPhone(ctx context.Context, phone, token string) error
	SendNow(ctx context.Context, queueID int, token string) (json.RawMessage, error)
	Templates(ctx context.Context, token string) ([]messaging.Template, error)
	CreateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error)
	UpdateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error)
	DeleteTemplate(ctx context.Context, id int, token string) error
	Stats(ctx context.Context, token string) (*messaging.Stats, error)
	ProcessQueue(ctx context.Context) (json.RawMessage, error)
}

// RateLimiterService decides whether a request identified by key (a client
// IP) may proceed within the current window.
type RateLimiterService interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, limit int, reset time.Time, err error)
}

// RateLimitRepository stores fixed-window request counters.
type RateLimitRepository interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}
