package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventback/hallrental/internal/domain/model"
	domainRepo "github.com/eventback/hallrental/internal/domain/repository"
)

type webhookRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewWebhookRepository creates a new webhook event repository
func NewWebhookRepository(db *gorm.DB, logger *zap.Logger) domainRepo.WebhookRepository {
	return &webhookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *webhookRepository) Record(ctx context.Context, event *model.WebhookEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Error("Failed to record webhook event",
			zap.String("provider", string(event.Provider)),
			zap.String("event_type", event.EventType),
			zap.Error(err))
		return fmt.Errorf("failed to record webhook event: %w", err)
	}
	return nil
}
