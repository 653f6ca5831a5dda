package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventback/hallrental/internal/adapter/repository"
	domainRepo "github.com/eventback/hallrental/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Hall    domainRepo.HallRepository
	Booking domainRepo.BookingRepository
	Payment domainRepo.PaymentRepository
	Webhook domainRepo.WebhookRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Hall:    repository.NewHallRepository(db, logger),
		Booking: repository.NewBookingRepository(db, logger),
		Payment: repository.NewPaymentRepository(db, logger),
		Webhook: repository.NewWebhookRepository(db, logger),
	}
}
