package ports

import (
	"context"
	"encoding/json"

	"github.com/scenastudio/site-backend/internal/core/domain/blog"
	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/core/domain/course"
	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/core/domain/messaging"
)

// ContentAPI wraps the remote content function. Writes require the operator's
// bearer token; its validity is enforced remotely.
type ContentAPI interface {
	List(ctx context.Context) ([]content.Entry, error)
	Get(ctx context.Context, key string) (*content.Entry, error)
	Upsert(ctx context.Context, key, value, token string) (*content.Entry, error)
}

// BlogAPI wraps the blog resource of the remote media function.
type BlogAPI interface {
	ListPage(ctx context.Context, page, perPage int) (*blog.List, error)
	GetBySlug(ctx context.Context, slug string) (*blog.Post, error)
	Create(ctx context.Context, req *blog.CreateRequest, token string) (*blog.Post, error)
	Update(ctx context.Context, id int, req *blog.UpdateRequest, token string) (*blog.Post, error)
	Delete(ctx context.Context, id int, token string) error
	Generate(ctx context.Context, token string) (*blog.Post, error)
}

// MediaAPI wraps the gallery, reviews, FAQ, and team resources of the remote
// media function.
type MediaAPI interface {
	GalleryImages(ctx context.Context) ([]media.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int, token string) error

	Reviews(ctx context.Context) ([]media.Review, error)
	CreateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error)
	UpdateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error)
	DeleteReview(ctx context.Context, id int, token string) error

	FAQ(ctx context.Context) ([]media.FAQ, error)
	CreateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error)
	UpdateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error)
	DeleteFAQ(ctx context.Context, id int, token string) error

	Team(ctx context.Context) ([]media.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int, token string) error
}

// ModulesAPI wraps the remote course-modules function.
type ModulesAPI interface {
	List(ctx context.Context) ([]course.Module, error)
	ListByCourse(ctx context.Context, courseType string) ([]course.Module, error)
	Create(ctx context.Context, m *course.Module, token string) (*course.Module, error)
	Update(ctx context.Context, m *course.Module, token string) (*course.Module, error)
	Delete(ctx context.Context, id int, token string) error
}

// LeadsAPI wraps the remote leads function. Creation is public; listing and
// status updates require a token.
type LeadsAPI interface {
	List(ctx context.Context, token string) ([]lead.Lead, error)
	Create(ctx context.Context, req *lead.CreateRequest) (*lead.Lead, error)
	UpdateStatus(ctx context.Context, id int, status, token string) (*lead.Lead, error)
}

// AuthAPI wraps the remote authentication function. Responses are opaque JSON
// passed through to the caller untouched.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (json.RawMessage, error)
	Register(ctx context.Context, username, password string) (json.RawMessage, error)
}

// MessagingAPI wraps the remote WhatsApp queue function and its sender.
type MessagingAPI interface {
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

// ConversionAPI wraps the remote Yandex Metrika conversion function.
type ConversionAPI interface {
	Send(ctx context.Context, conv *lead.Conversion) error
}
