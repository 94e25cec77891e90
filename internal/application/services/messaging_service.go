package services

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/domain/messaging"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

// MessagingServiceImpl is the admin surface over the WhatsApp queue function.
type MessagingServiceImpl struct {
	api    ports.MessagingAPI
	logger *logrus.Logger
}

func NewMessagingService(api ports.MessagingAPI, logger *logrus.Logger) ports.MessagingService {
	return &MessagingServiceImpl{api: api, logger: logger}
}

func (s *MessagingServiceImpl) Queue(ctx context.Context, token, status string) ([]messaging.QueueItem, error) {
	return s.api.Queue(ctx, token, status)
}

func (s *MessagingServiceImpl) DeleteQueueItem(ctx context.Context, id int, token string) error {
	return s.api.DeleteQueueItem(ctx, id, token)
}

func (s *MessagingServiceImpl) DeleteQueueByPhone(ctx context.Context, phone, token string) error {
	return s.api.DeleteQueueByPhone(ctx, phone, token)
}

func (s *MessagingServiceImpl) SendNow(ctx context.Context, queueID int, token string) (json.RawMessage, error) {
	return s.api.SendNow(ctx, queueID, token)
}

func (s *MessagingServiceImpl) Templates(ctx context.Context, token string) ([]messaging.Template, error) {
	return s.api.Templates(ctx, token)
}

func (s *MessagingServiceImpl) CreateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error) {
	return s.api.CreateTemplate(ctx, t, token)
}

func (s *MessagingServiceImpl) UpdateTemplate(ctx context.Context, t *messaging.Template, token string) (*messaging.Template, error) {
	return s.api.UpdateTemplate(ctx, t, token)
}

func (s *MessagingServiceImpl) DeleteTemplate(ctx context.Context, id int, token string) error {
	return s.api.DeleteTemplate(ctx, id, token)
}

func (s *MessagingServiceImpl) Stats(ctx context.Context, token string) (*messaging.Stats, error) {
	return s.api.Stats(ctx, token)
}

func (s *MessagingServiceImpl) ProcessQueue(ctx context.Context) (json.RawMessage, error) {
	s.logger.Info("Triggering WhatsApp queue processing")
	return s.api.ProcessQueue(ctx)
}
