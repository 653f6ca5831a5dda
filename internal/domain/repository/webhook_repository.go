package repository

import (
	"context"

	"github.com/eventback/hallrental/internal/domain/model"
)

// WebhookRepository persists the audit trail of provider finalization events
type WebhookRepository interface {
	Record(ctx context.Context, event *model.WebhookEvent) error
}
