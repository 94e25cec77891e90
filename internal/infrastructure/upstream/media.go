package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scenastudio/site-backend/internal/core/domain/media"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// MediaClient talks to the gallery, reviews, FAQ, and team resources of the
// remote media function. Gallery, reviews, and FAQ carry the resource
// discriminator in the request body; team uses query parameters (a quirk of
// the remote function's contract).
type MediaClient struct {
	c   *Client
	url string
}

func NewMediaClient(c *Client, url string) ports.MediaAPI {
	return &MediaClient{c: c, url: url}
}

func (mc *MediaClient) list(ctx context.Context, resource string, out func([]byte) error) error {
	q := url.Values{"resource": {resource}}
	raw, err := mc.c.doRaw(ctx, resource, http.MethodGet, mc.url, q, "", nil)
	if err != nil {
		return err
	}
	return out(raw)
}

func (mc *MediaClient) GalleryImages(ctx context.Context) ([]media.GalleryImage, error) {
	var items []media.GalleryImage
	err := mc.list(ctx, "gallery", func(raw []byte) (e error) {
		items, e = decodeArray[media.GalleryImage]("gallery", raw)
		return
	})
	return items, err
}

func (mc *MediaClient) CreateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	body := map[string]any{"resource": "gallery", "url": img.URL, "caption": img.Caption, "order_num": img.OrderNum}
	var out media.GalleryImage
	if err := mc.c.do(ctx, "gallery", http.MethodPost, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) UpdateGalleryImage(ctx context.Context, img *media.GalleryImage, token string) (*media.GalleryImage, error) {
	body := map[string]any{"resource": "gallery", "id": img.ID, "url": img.URL, "caption": img.Caption, "order_num": img.OrderNum}
	var out media.GalleryImage
	if err := mc.c.do(ctx, "gallery", http.MethodPut, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) DeleteGalleryImage(ctx context.Context, id int, token string) error {
	body := map[string]any{"resource": "gallery", "id": id}
	return mc.c.do(ctx, "gallery", http.MethodDelete, mc.url, nil, token, body, nil)
}

func (mc *MediaClient) Reviews(ctx context.Context) ([]media.Review, error) {
	var items []media.Review
	err := mc.list(ctx, "reviews", func(raw []byte) (e error) {
		items, e = decodeArray[media.Review]("reviews", raw)
		return
	})
	return items, err
}

func (mc *MediaClient) CreateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	body := map[string]any{"resource": "reviews", "name": r.Name, "text": r.Text, "rating": r.Rating, "image_url": r.ImageURL, "order_num": r.OrderNum}
	var out media.Review
	if err := mc.c.do(ctx, "reviews", http.MethodPost, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) UpdateReview(ctx context.Context, r *media.Review, token string) (*media.Review, error) {
	body := map[string]any{"resource": "reviews", "id": r.ID, "name": r.Name, "text": r.Text, "rating": r.Rating, "image_url": r.ImageURL, "order_num": r.OrderNum}
	var out media.Review
	if err := mc.c.do(ctx, "reviews", http.MethodPut, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) DeleteReview(ctx context.Context, id int, token string) error {
	body := map[string]any{"resource": "reviews", "id": id}
	return mc.c.do(ctx, "reviews", http.MethodDelete, mc.url, nil, token, body, nil)
}

func (mc *MediaClient) FAQ(ctx context.Context) ([]media.FAQ, error) {
	var items []media.FAQ
	err := mc.list(ctx, "faq", func(raw []byte) (e error) {
		items, e = decodeArray[media.FAQ]("faq", raw)
		return
	})
	return items, err
}

func (mc *MediaClient) CreateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	body := map[string]any{"resource": "faq", "question": f.Question, "answer": f.Answer, "order_num": f.OrderNum}
	var out media.FAQ
	if err := mc.c.do(ctx, "faq", http.MethodPost, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) UpdateFAQ(ctx context.Context, f *media.FAQ, token string) (*media.FAQ, error) {
	body := map[string]any{"resource": "faq", "id": f.ID, "question": f.Question, "answer": f.Answer, "order_num": f.OrderNum}
	var out media.FAQ
	if err := mc.c.do(ctx, "faq", http.MethodPut, mc.url, nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) DeleteFAQ(ctx context.Context, id int, token string) error {
	body := map[string]any{"resource": "faq", "id": id}
	return mc.c.do(ctx, "faq", http.MethodDelete, mc.url, nil, token, body, nil)
}

func (mc *MediaClient) Team(ctx context.Context) ([]media.TeamMember, error) {
	var items []media.TeamMember
	err := mc.list(ctx, "team", func(raw []byte) (e error) {
		items, e = decodeArray[media.TeamMember]("team", raw)
		return
	})
	return items, err
}

func (mc *MediaClient) CreateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	q := url.Values{"resource": {"team"}}
	var out media.TeamMember
	if err := mc.c.do(ctx, "team", http.MethodPost, mc.url, q, token, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) UpdateTeamMember(ctx context.Context, m *media.TeamMember, token string) (*media.TeamMember, error) {
	q := url.Values{"resource": {"team"}, "id": {strconv.Itoa(m.ID)}}
	var out media.TeamMember
	if err := mc.c.do(ctx, "team", http.MethodPut, mc.url, q, token, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (mc *MediaClient) DeleteTeamMember(ctx context.Context, id int, token string) error {
	q := url.Values{"resource": {"team"}, "id": {strconv.Itoa(id)}}
	return mc.c.do(ctx, "team", http.MethodDelete, mc.url, q, token, nil, nil)
}
