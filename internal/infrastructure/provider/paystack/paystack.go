package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/provider"
)

const referencePrefix = "PSK_"

// PaystackProvider implements the PaymentProvider interface. Creation mints a
// local reference without any remote call; the browser-side Paystack widget
// charges against it and the charge.success webhook closes the loop.
type PaystackProvider struct {
	publicKey string
	secretKey string
	logger    *zap.Logger
}

// NewPaystackProvider creates a new Paystack provider
func NewPaystackProvider(cfg config.PaystackConfig, logger *zap.Logger) *PaystackProvider {
	return &PaystackProvider{
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}
}

// Name returns the provider name
func (p *PaystackProvider) Name() provider.ProviderType {
	return provider.ProviderTypePaystack
}

// CreatePayment mints the transaction reference the client-side widget will
// charge with.
func (p *PaystackProvider) CreatePayment(ctx context.Context, req *provider.CreatePaymentRequest) (*provider.CreatePaymentResponse, error) {
	ref := newReference()

	p.logger.Info("PaystackProvider: reference minted",
		zap.Int64("booking_id", req.BookingID),
		zap.String("reference", ref))

	return &provider.CreatePaymentResponse{
		ProviderRef: ref,
		Raw:         map[string]interface{}{},
		Body: map[string]interface{}{
			"reference":   ref,
			"email":       req.CustomerEmail,
			"amount_kobo": provider.MinorUnits(req.Amount),
			"public_key":  p.publicKey,
		},
	}, nil
}

// ConfirmPayment is not part of the Paystack flow; charges complete through
// the webhook.
func (p *PaystackProvider) ConfirmPayment(ctx context.Context, req *provider.ConfirmPaymentRequest) (*provider.ConfirmPaymentResponse, error) {
	return nil, &provider.ProviderError{
		Code:    "NOT_SUPPORTED",
		Message: "Paystack payments are finalized via webhook, not capture",
	}
}

// HandleWebhook parses a Paystack event. When a secret key is configured the
// X-Paystack-Signature header (HMAC-SHA512 of the body) is checked first.
func (p *PaystackProvider) HandleWebhook(ctx context.Context, payload []byte, signature string) (*provider.WebhookEvent, error) {
	if p.secretKey != "" && !p.verifySignature(payload, signature) {
		p.logger.Warn("PaystackProvider: webhook signature verification failed")
		return nil, &provider.ProviderError{
			Code:    "SIGNATURE_INVALID",
			Message: "Paystack webhook signature verification failed",
		}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse webhook payload",
			Details: err.Error(),
		}
	}

	eventName, _ := raw["event"].(string)
	if eventName != "charge.success" {
		return &provider.WebhookEvent{
			Kind:      provider.EventIgnored,
			EventName: eventName,
			Raw:       raw,
		}, nil
	}

	var reference string
	if data, ok := raw["data"].(map[string]interface{}); ok {
		reference, _ = data["reference"].(string)
	}

	return &provider.WebhookEvent{
		Kind:      provider.EventPaymentSucceeded,
		EventName: eventName,
		Reference: reference,
		Raw:       raw,
	}, nil
}

func (p *PaystackProvider) verifySignature(payload []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(p.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// newReference mints a PSK_-prefixed reference from a random UUID's hex form.
func newReference() string {
	hexID := strings.ReplaceAll(uuid.New().String(), "-", "")
	return referencePrefix + hexID[:18]
}
