package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	config "github.com/scenastudio/site-backend/configs"
	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/core/ports"
)

const leadNotificationTemplate = `
<h2>Новая заявка с сайта</h2>
<table cellpadding="6" style="border-collapse:collapse">
  <tr><td><b>Имя</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Телефон</b></td><td>{{.Phone}}</td></tr>
  {{if .Course}}<tr><td><b>Курс</b></td><td>{{.Course}}</td></tr>{{end}}
  <tr><td><b>Источник</b></td><td>{{.Source}}</td></tr>
</table>
<p>{{.CompanyName}}</p>
`

// Notifier sends lead notifications to the school administrators through
// SendGrid. A nil *Notifier is a valid no-op, so callers don't branch on
// whether email is configured.
type Notifier struct {
	config *config.EmailConfig
	logger *logrus.Logger
	client *sendgrid.Client
	tmpl   *template.Template
}

// NewNotifier creates a lead notifier, or nil when no API key or admin
// address is configured.
func NewNotifier(cfg *config.EmailConfig, logger *logrus.Logger) (ports.LeadNotifier, error) {
	if cfg.SendGridAPIKey == "" || cfg.AdminEmail == "" {
		logger.Info("Email notifications disabled: SendGrid key or admin email not configured")
		return (*Notifier)(nil), nil
	}

	tmpl, err := template.New("lead_notification").Parse(leadNotificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lead notification template: %w", err)
	}

	return &Notifier{
		config: cfg,
		logger: logger,
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		tmpl:   tmpl,
	}, nil
}

type leadNotificationData struct {
	Name        string
	Phone       string
	Course      string
	Source      string
	CompanyName string
}

// NotifyNewLead implements ports.LeadNotifier.
func (n *Notifier) NotifyNewLead(ctx context.Context, l *lead.Lead) error {
	if n == nil {
		return nil
	}

	data := leadNotificationData{
		Name:        l.Name,
		Phone:       l.Phone,
		Course:      l.Course,
		Source:      l.Source,
		CompanyName: n.config.CompanyName,
	}

	var buf bytes.Buffer
	if err := n.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render lead notification: %w", err)
	}

	from := mail.NewEmail(n.config.FromName, n.config.FromEmail)
	recipient := mail.NewEmail("", n.config.AdminEmail)
	subject := fmt.Sprintf("Новая заявка: %s", l.Phone)
	message := mail.NewSingleEmail(from, subject, recipient, "", buf.String())

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		n.logger.WithFields(logrus.Fields{
			"lead_id": l.ID,
			"error":   err,
		}).Error("Failed to send lead notification")
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"lead_id":     l.ID,
		"status_code": response.StatusCode,
	}).Info("Lead notification sent")

	return nil
}
