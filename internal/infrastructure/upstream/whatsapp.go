package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scenastudio/site-backend/internal/core/domain/messaging"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// WhatsAppClient talks to the remote WhatsApp queue function and, for the
// sender trigger, the separate sender function. All admin operations carry
// the operator token; the sender trigger is tokenless by contract.
type WhatsAppClient struct {
	c         *Client
	url       string
	senderURL string
}

func NewWhatsAppClient(c *Client, url, senderURL string) ports.MessagingAPI {
	return &WhatsAppClient{c: c, url: url, senderURL: senderURL}
}

func (wc *WhatsAppClient) Queue(ctx context.Context, token, status string) ([]messaging.QueueItem, error) {
	q := url.Values{"resource": {"queue"}}
	if status != "" {
		q.Set("status", status)
	}
	raw, err := wc.c.doRaw(ctx, "whatsapp", http.MethodGet, wc.url, q, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[messaging.QueueItem]("whatsapp", raw)
}

func (wc *WhatsAppClient) DeleteQueueItem(ctx context.Context, id int, token string) error {
	q := url.Values{"resource": {"queue"}, "id": {strconv.Itoa(id)}}
	return wc.c.do(ctx, "whatsapp", http.MethodDelete, wc.url, q, token, nil, nil)
}

func (wc *WhatsAppClient) DeleteQueueByPhone(ctx context.Context, phone, token string) error {
	q := url.Values{"resource": {"queue"}, "phone": {phone}}
	return wc.c.do(ctx, "whatsapp", http.MethodDelete, wc.url, q, token, nil, nil)
}

func (wc *WhatsAppClient) SendNow(ctx context.Context, queueID int, token string) (json.RawMessage, error) {
	q := url.Values{"resource": {"send_now"}}
	body := map[string]any{"queue_id": queueID}
	raw, err := wc.c.doRaw(ctx, "whatsapp", http.MethodPost, wc.url, q, token, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (wc *WhatsAppClient) Templates(ctx context.Context, token string) ([]messaging.Template, error) {
	q := url.Values{"resource": {"templates"}}
	raw, err := wc.c.doRaw(ctx, "whatsapp", http.MethodGet, wc.url, q, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeArray[messaging.Template]("whatsapp", raw)
}

func (wc *WhatsAppClient) CreateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error) {
	q := url.Values{"resource": {"templates"}}
	var out messaging.Template
	if err := wc.c.do(ctx, "whatsapp", http.MethodPost, wc.url, q, token, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (wc *WhatsAppClient) UpdateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error) {
	q := url.Values{"resource": {"templates"}}
	var out messaging.Template
	if err := wc.c.do(ctx, "whatsapp", http.MethodPut, wc.url, q, token, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (wc *WhatsAppClient) DeleteTemplate(ctx context.Context, id int, token string) error {
	q := url.Values{"resource": {"templates"}, "id": {strconv.Itoa(id)}}
	return wc.c.do(ctx, "whatsapp", http.MethodDelete, wc.url, q, token, nil, nil)
}

func (wc *WhatsAppClient) Stats(ctx context.Context, token string) (*messaging.Stats, error) {
	q := url.Values{"resource": {"stats"}}
	var s messaging.Stats
	if err := wc.c.do(ctx, "whatsapp", http.MethodGet, wc.url, q, token, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ProcessQueue pokes the sender function to drain due queue entries.
func (wc *WhatsAppClient) ProcessQueue(ctx context.Context) (json.RawMessage, error) {
	raw, err := wc.c.doRaw(ctx, "whatsapp-sender", http.MethodGet, wc.senderURL, nil, "", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
