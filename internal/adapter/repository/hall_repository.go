package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventback/hallrental/internal/domain/model"
	domainRepo "github.com/eventback/hallrental/internal/domain/repository"
)

type hallRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHallRepository creates a new hall repository
func NewHallRepository(db *gorm.DB, logger *zap.Logger) domainRepo.HallRepository {
	return &hallRepository{
		db:     db,
		logger: logger,
	}
}

func (r *hallRepository) GetByID(ctx context.Context, id int64) (*model.Hall, error) {
	var hall model.Hall

	err := r.db.WithContext(ctx).First(&hall, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get hall",
			zap.Int64("hall_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	return &hall, nil
}

func (r *hallRepository) List(ctx context.Context, limit int) ([]model.Hall, error) {
	var halls []model.Hall

	query := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&halls).Error; err != nil {
		r.logger.Error("Failed to list halls", zap.Error(err))
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}

	return halls, nil
}
