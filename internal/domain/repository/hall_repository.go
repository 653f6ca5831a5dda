package repository

import (
	"context"

	"github.com/eventback/hallrental/internal/domain/model"
)

type HallRepository interface {
	// GetByID returns the hall or (nil, nil) when it does not exist
	GetByID(ctx context.Context, id int64) (*model.Hall, error)

	// List returns halls ordered by id; limit <= 0 means no limit
	List(ctx context.Context, limit int) ([]model.Hall, error)
}
