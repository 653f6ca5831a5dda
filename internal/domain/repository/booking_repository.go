package repository

import (
	"context"

	"github.com/eventback/hallrental/internal/domain/model"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error

	// GetByID returns the booking or (nil, nil) when it does not exist
	GetByID(ctx context.Context, id int64) (*model.Booking, error)

	// ListActiveByHall returns the hall's bookings with status pending or
	// confirmed; cancelled bookings do not block dates
	ListActiveByHall(ctx context.Context, hallID int64) ([]model.Booking, error)

	Update(ctx context.Context, booking *model.Booking) error
}
