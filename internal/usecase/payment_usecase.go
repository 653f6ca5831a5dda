package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/domain/model"
	"github.com/eventback/hallrental/internal/domain/provider"
	"github.com/eventback/hallrental/internal/domain/repository"
)

// ProviderFactory resolves payment provider adapters by type
type ProviderFactory interface {
	GetProvider(providerType provider.ProviderType) (provider.PaymentProvider, error)
}

// PaymentUsecase orchestrates payment creation and finalization across
// providers. Finalization drives the only implemented booking transition:
// pending -> confirmed on a successful payment.
type PaymentUsecase struct {
	factory     ProviderFactory
	hallRepo    repository.HallRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	webhookRepo repository.WebhookRepository
	logger      *zap.Logger
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	factory ProviderFactory,
	hallRepo repository.HallRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	webhookRepo repository.WebhookRepository,
	logger *zap.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		factory:     factory,
		hallRepo:    hallRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		webhookRepo: webhookRepo,
		logger:      logger,
	}
}

// CreatePayment creates a remote payment for the booking through the chosen
// provider and upserts the local payment row. The returned body is the
// provider-shaped response the client-side integration expects, passed
// through verbatim, including provider error payloads.
func (u *PaymentUsecase) CreatePayment(ctx context.Context, providerType provider.ProviderType, bookingID int64) (interface{}, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domainErrors.ErrBookingNotFound
	}

	hall, err := u.hallRepo.GetByID(ctx, booking.HallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, domainErrors.ErrHallNotFound
	}

	prov, err := u.factory.GetProvider(providerType)
	if err != nil {
		return nil, err
	}

	resp, err := prov.CreatePayment(ctx, &provider.CreatePaymentRequest{
		BookingID:     booking.ID,
		Amount:        booking.TotalAmount,
		CustomerEmail: booking.CustomerEmail,
		HallName:      hall.Name,
	})
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		BookingID:   booking.ID,
		Provider:    model.PaymentProvider(providerType),
		ProviderRef: resp.ProviderRef,
		Status:      model.PaymentStatusInitiated,
		Amount:      booking.TotalAmount,
		RawResponse: model.JSONB(resp.Raw),
	}
	if err := u.paymentRepo.Upsert(ctx, payment); err != nil {
		return nil, err
	}

	u.logger.Info("Payment initiated",
		zap.Int64("booking_id", booking.ID),
		zap.String("provider", string(providerType)),
		zap.String("provider_ref", resp.ProviderRef))

	return resp.Body, nil
}

// CapturePayPalOrder captures a PayPal order and, when the capture payload
// references a known booking, marks the payment succeeded and the booking
// confirmed. The raw capture body is returned to the client either way; a
// finalization failure is recorded in the audit trail instead of surfacing.
func (u *PaymentUsecase) CapturePayPalOrder(ctx context.Context, orderID string) (interface{}, error) {
	prov, err := u.factory.GetProvider(provider.ProviderTypePayPal)
	if err != nil {
		return nil, err
	}

	resp, err := prov.ConfirmPayment(ctx, &provider.ConfirmPaymentRequest{ProviderRef: orderID})
	if err != nil {
		return nil, err
	}

	record := &model.WebhookEvent{
		Provider:  model.PaymentProviderPayPal,
		EventType: "order.capture",
		Reference: orderID,
		Payload:   model.JSONB(resp.Raw),
	}
	if finErr := u.finalizeBooking(ctx, resp.BookingID, resp.Raw); finErr != nil {
		u.logger.Warn("PayPal capture not finalized",
			zap.String("order_id", orderID),
			zap.Int64("booking_id", resp.BookingID),
			zap.Error(finErr))
		u.markFailed(record, finErr)
	} else {
		u.markProcessed(record)
	}
	if err := u.webhookRepo.Record(ctx, record); err != nil {
		u.logger.Error("Failed to record capture outcome", zap.Error(err))
	}

	return resp.Body, nil
}

// HandleWebhook verifies, parses and applies a provider webhook delivery.
// It never propagates an error: whatever happens is logged and recorded in
// the audit trail, and the transport layer answers 200 so providers do not
// retry-storm malformed or stale events. The recorded event is returned for
// observability.
func (u *PaymentUsecase) HandleWebhook(ctx context.Context, providerType provider.ProviderType, payload []byte, signature string) *model.WebhookEvent {
	record := &model.WebhookEvent{
		Provider: model.PaymentProvider(providerType),
		Status:   model.WebhookStatusReceived,
	}
	defer func() {
		if err := u.webhookRepo.Record(ctx, record); err != nil {
			u.logger.Error("Failed to record webhook event", zap.Error(err))
		}
	}()

	prov, err := u.factory.GetProvider(providerType)
	if err != nil {
		u.markFailed(record, err)
		return record
	}

	evt, err := prov.HandleWebhook(ctx, payload, signature)
	if err != nil {
		u.logger.Warn("Webhook rejected",
			zap.String("provider", string(providerType)),
			zap.Error(err))
		u.markFailed(record, err)
		return record
	}

	record.EventType = evt.EventName
	record.Reference = evt.Reference
	record.Payload = model.JSONB(evt.Raw)

	switch evt.Kind {
	case provider.EventPaymentSucceeded:
		var finErr error
		if evt.Reference != "" {
			finErr = u.finalizeByReference(ctx, model.PaymentProvider(providerType), evt.Reference, evt.Raw)
		} else {
			finErr = u.finalizeBooking(ctx, evt.BookingID, evt.Raw)
		}
		if finErr != nil {
			u.logger.Warn("Webhook not applied",
				zap.String("provider", string(providerType)),
				zap.String("event", evt.EventName),
				zap.Int64("booking_id", evt.BookingID),
				zap.String("reference", evt.Reference),
				zap.Error(finErr))
			u.markFailed(record, finErr)
		} else {
			u.logger.Info("Payment finalized",
				zap.String("provider", string(providerType)),
				zap.String("event", evt.EventName))
			u.markProcessed(record)
		}
	default:
		record.Status = model.WebhookStatusIgnored
	}

	return record
}

// finalizeBooking marks the booking's payment succeeded and the booking
// confirmed. Nothing changes when the booking or its payment is unknown.
func (u *PaymentUsecase) finalizeBooking(ctx context.Context, bookingID int64, raw map[string]interface{}) error {
	if bookingID == 0 {
		return fmt.Errorf("event carries no booking reference")
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %d: %w", bookingID, domainErrors.ErrBookingNotFound)
	}

	payment, err := u.paymentRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}
	if payment == nil {
		return fmt.Errorf("booking %d: %w", bookingID, domainErrors.ErrPaymentNotFound)
	}

	return u.succeed(ctx, booking, payment, raw)
}

// finalizeByReference resolves the payment by (provider, provider_ref), the
// addressing scheme for providers that echo back a locally minted reference.
func (u *PaymentUsecase) finalizeByReference(ctx context.Context, providerName model.PaymentProvider, ref string, raw map[string]interface{}) error {
	payment, err := u.paymentRepo.GetByProviderRef(ctx, providerName, ref)
	if err != nil {
		return err
	}
	if payment == nil {
		return fmt.Errorf("reference %s: %w", ref, domainErrors.ErrPaymentNotFound)
	}

	booking, err := u.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %d: %w", payment.BookingID, domainErrors.ErrBookingNotFound)
	}

	return u.succeed(ctx, booking, payment, raw)
}

func (u *PaymentUsecase) succeed(ctx context.Context, booking *model.Booking, payment *model.Payment, raw map[string]interface{}) error {
	payment.Status = model.PaymentStatusSucceeded
	if raw != nil {
		payment.RawResponse = model.JSONB(raw)
	}
	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		return err
	}

	booking.Status = model.BookingStatusConfirmed
	if err := u.bookingRepo.Update(ctx, booking); err != nil {
		return err
	}

	u.logger.Info("Booking confirmed",
		zap.Int64("booking_id", booking.ID),
		zap.String("provider", string(payment.Provider)))
	return nil
}

func (u *PaymentUsecase) markProcessed(record *model.WebhookEvent) {
	now := time.Now()
	record.Status = model.WebhookStatusProcessed
	record.ProcessedAt = &now
}

func (u *PaymentUsecase) markFailed(record *model.WebhookEvent, err error) {
	msg := err.Error()
	record.Status = model.WebhookStatusFailed
	record.Error = &msg
}
