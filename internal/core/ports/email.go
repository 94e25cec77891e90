package ports

import (
	"context"

	"github.com/scenastudio/site-backend/internal/core/domain/lead"
)

// LeadNotifier delivers a notification about a freshly submitted lead to the
// school administrators. Failures are reported but must never block intake.
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, l *lead.Lead) error
}
