package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventback/hallrental/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.Hall{},
		&model.Booking{},
		&model.Payment{},
		&model.WebhookEvent{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes GORM doesn't derive from struct tags
func createCustomIndexes(db *gorm.DB) error {
	// Availability checks scan a hall's pending/confirmed bookings
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_hall_status ON bookings (hall_id, status)`).Error; err != nil {
		return err
	}

	// Paystack webhook finalization looks payments up by (provider, provider_ref)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_provider_ref ON payments (provider, provider_ref)`).Error; err != nil {
		return err
	}

	return nil
}
