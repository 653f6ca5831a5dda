package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentProvider defines the interface for payment providers (PayPal, Stripe, Paystack)
type PaymentProvider interface {
	// CreatePayment creates a remote order/session (or mints a local
	// reference) for the booking's total amount
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error)

	// ConfirmPayment captures a previously created payment. Only meaningful
	// for providers with a client-invoked capture step; others return a
	// NOT_SUPPORTED ProviderError.
	ConfirmPayment(ctx context.Context, req *ConfirmPaymentRequest) (*ConfirmPaymentResponse, error)

	// HandleWebhook verifies and parses a provider webhook delivery into a
	// normalized event
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)

	// Name returns the provider name
	Name() ProviderType
}

// CreatePaymentRequest represents a provider-agnostic payment creation request
type CreatePaymentRequest struct {
	BookingID     int64           `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	CustomerEmail string          `json:"customer_email"`
	HallName      string          `json:"hall_name"`
}

// CreatePaymentResponse represents the response from payment creation
type CreatePaymentResponse struct {
	ProviderRef string                 `json:"provider_ref"` // remote order id / session id / reference code
	Raw         map[string]interface{} `json:"raw,omitempty"`
	Body        interface{}            `json:"body,omitempty"` // provider-shaped body passed through to the client
}

// ConfirmPaymentRequest represents a payment capture request
type ConfirmPaymentRequest struct {
	ProviderRef string `json:"provider_ref"`
}

// ConfirmPaymentResponse represents the response from a payment capture.
// BookingID is zero when the capture payload carried no usable reference.
type ConfirmPaymentResponse struct {
	BookingID int64                  `json:"booking_id"`
	Raw       map[string]interface{} `json:"raw,omitempty"`
	Body      interface{}            `json:"body,omitempty"`
}

// EventKind classifies a normalized webhook event
type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment_succeeded"
	EventIgnored          EventKind = "ignored"
)

// WebhookEvent represents a normalized provider webhook event. Exactly one of
// BookingID or Reference identifies the payment for succeeded events,
// depending on how the provider addresses it.
type WebhookEvent struct {
	Kind      EventKind              `json:"kind"`
	EventName string                 `json:"event_name"` // provider's own event type string
	BookingID int64                  `json:"booking_id,omitempty"`
	Reference string                 `json:"reference,omitempty"`
	Raw       map[string]interface{} `json:"raw,omitempty"`
}

// ProviderType represents the type of payment provider
type ProviderType string

const (
	ProviderTypePayPal   ProviderType = "paypal"
	ProviderTypeStripe   ProviderType = "stripe"
	ProviderTypePaystack ProviderType = "paystack"
)

// Error types for provider operations
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// MinorUnits converts a currency amount to its smallest unit by multiplying
// by 100 and truncating. Zero-decimal currencies are not special-cased; the
// conversion is uniform across providers.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
