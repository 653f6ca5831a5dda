package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventback/hallrental/internal/domain/model"
	domainRepo "github.com/eventback/hallrental/internal/domain/repository"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert overwrites any existing payment for the same booking, keeping the
// one-payment-per-booking invariant intact across re-initiations.
func (r *paymentRepository) Upsert(ctx context.Context, payment *model.Payment) error {
	payment.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"provider", "provider_ref", "status", "amount", "raw_response", "updated_at",
			}),
		}).
		Create(payment).Error
	if err != nil {
		r.logger.Error("Failed to upsert payment",
			zap.Int64("booking_id", payment.BookingID),
			zap.String("provider", string(payment.Provider)),
			zap.Error(err))
		return fmt.Errorf("failed to upsert payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment by booking",
			zap.Int64("booking_id", bookingID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) GetByProviderRef(ctx context.Context, providerName model.PaymentProvider, ref string) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_ref = ?", providerName, ref).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment by provider ref",
			zap.String("provider", string(providerName)),
			zap.String("provider_ref", ref),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	payment.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		r.logger.Error("Failed to update payment",
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}
