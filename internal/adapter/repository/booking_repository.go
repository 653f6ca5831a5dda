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

type bookingRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB, logger *zap.Logger) domainRepo.BookingRepository {
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		r.logger.Error("Failed to create booking",
			zap.Int64("hall_id", booking.HallID),
			zap.Error(err))
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	var booking model.Booking

	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get booking",
			zap.Int64("booking_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) ListActiveByHall(ctx context.Context, hallID int64) ([]model.Booking, error) {
	var bookings []model.Booking

	err := r.db.WithContext(ctx).
		Where("hall_id = ? AND status IN (?, ?)",
			hallID,
			model.BookingStatusPending,
			model.BookingStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		r.logger.Error("Failed to list active bookings",
			zap.Int64("hall_id", hallID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	if err := r.db.WithContext(ctx).Save(booking).Error; err != nil {
		r.logger.Error("Failed to update booking",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}
