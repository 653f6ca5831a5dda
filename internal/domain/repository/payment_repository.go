package repository

import (
	"context"

	"github.com/eventback/hallrental/internal/domain/model"
)

type PaymentRepository interface {
	// Upsert creates the booking's payment row or overwrites the existing
	// one, keyed on booking_id
	Upsert(ctx context.Context, payment *model.Payment) error

	// GetByBookingID returns the payment or (nil, nil) when none exists
	GetByBookingID(ctx context.Context, bookingID int64) (*model.Payment, error)

	// GetByProviderRef looks a payment up by (provider, provider_ref),
	// returning (nil, nil) when none matches
	GetByProviderRef(ctx context.Context, providerName model.PaymentProvider, ref string) (*model.Payment, error)

	Update(ctx context.Context, payment *model.Payment) error
}
