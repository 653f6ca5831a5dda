package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/provider"
)

// StripeProvider implements the PaymentProvider interface using hosted
// checkout sessions. The booking id travels in the session metadata and
// comes back in the checkout.session.completed webhook.
type StripeProvider struct {
	webhookSecret string
	siteURL       string
	logger        *zap.Logger
}

// NewStripeProvider creates a new Stripe provider
func NewStripeProvider(cfg config.StripeConfig, siteURL string, logger *zap.Logger) *StripeProvider {
	stripe.Key = cfg.SecretKey

	return &StripeProvider{
		webhookSecret: cfg.WebhookSecret,
		siteURL:       siteURL,
		logger:        logger,
	}
}

// Name returns the provider name
func (s *StripeProvider) Name() provider.ProviderType {
	return provider.ProviderTypeStripe
}

// CreatePayment creates a hosted checkout session for the booking total,
// converted to minor currency units.
func (s *StripeProvider) CreatePayment(ctx context.Context, req *provider.CreatePaymentRequest) (*provider.CreatePaymentResponse, error) {
	bookingID := strconv.FormatInt(req.BookingID, 10)

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(fmt.Sprintf("%s?success=true&booking_id=%s", s.siteURL, bookingID)),
		CancelURL:     stripe.String(fmt.Sprintf("%s?cancelled=true&booking_id=%s", s.siteURL, bookingID)),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Hall: " + req.HallName),
					},
					UnitAmount: stripe.Int64(provider.MinorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("booking_id", bookingID)

	sess, err := checkoutsession.New(params)
	if err != nil {
		s.logger.Error("StripeProvider: checkout session creation failed",
			zap.Int64("booking_id", req.BookingID),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "API_ERROR",
			Message: "Stripe checkout session creation failed",
			Details: err.Error(),
		}
	}

	s.logger.Info("StripeProvider: checkout session created",
		zap.Int64("booking_id", req.BookingID),
		zap.String("session_id", sess.ID))

	return &provider.CreatePaymentResponse{
		ProviderRef: sess.ID,
		Raw:         map[string]interface{}{"session": sess.ID},
		Body:        map[string]string{"id": sess.ID, "url": sess.URL},
	}, nil
}

// ConfirmPayment is not part of the Stripe flow; checkout sessions complete
// through the webhook.
func (s *StripeProvider) ConfirmPayment(ctx context.Context, req *provider.ConfirmPaymentRequest) (*provider.ConfirmPaymentResponse, error) {
	return nil, &provider.ProviderError{
		Code:    "NOT_SUPPORTED",
		Message: "Stripe payments are finalized via webhook, not capture",
	}
}

// HandleWebhook parses a Stripe event. When a webhook secret is configured
// the signature is verified first; without one the payload is trusted as-is.
func (s *StripeProvider) HandleWebhook(ctx context.Context, payload []byte, signature string) (*provider.WebhookEvent, error) {
	eventType, object, raw, err := s.decodeEvent(payload, signature)
	if err != nil {
		return nil, err
	}

	if eventType != "checkout.session.completed" {
		return &provider.WebhookEvent{
			Kind:      provider.EventIgnored,
			EventName: eventType,
			Raw:       raw,
		}, nil
	}

	return &provider.WebhookEvent{
		Kind:      provider.EventPaymentSucceeded,
		EventName: eventType,
		BookingID: bookingIDFromSession(object),
		Raw:       raw,
	}, nil
}

func (s *StripeProvider) decodeEvent(payload []byte, signature string) (string, map[string]interface{}, map[string]interface{}, error) {
	var raw map[string]interface{}
	_ = json.Unmarshal(payload, &raw)

	if s.webhookSecret != "" {
		event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			s.logger.Warn("StripeProvider: webhook signature verification failed", zap.Error(err))
			return "", nil, nil, &provider.ProviderError{
				Code:    "SIGNATURE_INVALID",
				Message: "Stripe webhook signature verification failed",
				Details: err.Error(),
			}
		}

		var object map[string]interface{}
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return "", nil, nil, &provider.ProviderError{
				Code:    "PARSE_ERROR",
				Message: "Failed to parse event object",
				Details: err.Error(),
			}
		}
		return string(event.Type), object, raw, nil
	}

	var event struct {
		Type string `json:"type"`
		Data struct {
			Object map[string]interface{} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return "", nil, nil, &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse webhook payload",
			Details: err.Error(),
		}
	}
	return event.Type, event.Data.Object, raw, nil
}

// bookingIDFromSession reads metadata.booking_id from a checkout session
// object. Returns 0 when absent or not numeric.
func bookingIDFromSession(object map[string]interface{}) int64 {
	metadata, ok := object["metadata"].(map[string]interface{})
	if !ok {
		return 0
	}
	str, ok := metadata["booking_id"].(string)
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
