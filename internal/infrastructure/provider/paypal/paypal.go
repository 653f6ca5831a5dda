package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/provider"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"
)

// PayPalProvider implements the PaymentProvider interface against the PayPal
// Orders v2 API. Finalization happens through a client-invoked capture, not a
// webhook; the webhook route is a recorded no-op.
type PayPalProvider struct {
	clientID     string
	clientSecret string
	currency     string
	baseURL      string
	client       *http.Client
	logger       *zap.Logger
}

// NewPayPalProvider creates a new PayPal provider
func NewPayPalProvider(cfg config.PayPalConfig, logger *zap.Logger) *PayPalProvider {
	baseURL := liveBaseURL
	if cfg.Mode != "live" {
		baseURL = sandboxBaseURL
	}

	return &PayPalProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		currency:     cfg.Currency,
		baseURL:      baseURL,
		client:       &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

// Name returns the provider name
func (p *PayPalProvider) Name() provider.ProviderType {
	return provider.ProviderTypePayPal
}

// accessToken exchanges client credentials for an OAuth access token.
func (p *PayPalProvider) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &provider.ProviderError{
			Code:    "REQUEST_ERROR",
			Message: "Failed to create token request",
			Details: err.Error(),
		}
	}
	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("PayPalProvider: token request failed", zap.Error(err))
		return "", &provider.ProviderError{
			Code:    "AUTH_ERROR",
			Message: "PayPal token request failed",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &provider.ProviderError{
			Code:    "RESPONSE_ERROR",
			Message: "Failed to read token response",
			Details: err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.Error("PayPalProvider: token exchange rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return "", &provider.ProviderError{
			Code:    "AUTH_ERROR",
			Message: "PayPal token exchange rejected",
			Details: string(body),
		}
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse token response",
			Details: err.Error(),
		}
	}

	return result.AccessToken, nil
}

// CreatePayment creates a remote order for the booking total. The order body
// is passed through to the client verbatim, including PayPal error payloads,
// so the browser-side integration sees exactly what the API returned.
func (p *PayPalProvider) CreatePayment(ctx context.Context, req *provider.CreatePaymentRequest) (*provider.CreatePaymentResponse, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	order := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": strconv.FormatInt(req.BookingID, 10),
				"amount": map[string]string{
					"currency_code": p.currency,
					"value":         req.Amount.StringFixed(2),
				},
			},
		},
	}

	data, err := p.post(ctx, "/v2/checkout/orders", token, order)
	if err != nil {
		return nil, err
	}

	p.logger.Info("PayPalProvider: order created",
		zap.Int64("booking_id", req.BookingID),
		zap.String("order_id", getString(data, "id")))

	return &provider.CreatePaymentResponse{
		ProviderRef: getString(data, "id"),
		Raw:         data,
		Body:        data,
	}, nil
}

// ConfirmPayment captures a previously created order and extracts the booking
// id from the purchase unit's reference id. A capture payload without a
// usable reference yields BookingID 0; the caller decides what to do with it.
func (p *PayPalProvider) ConfirmPayment(ctx context.Context, req *provider.ConfirmPaymentRequest) (*provider.ConfirmPaymentResponse, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	data, err := p.post(ctx, "/v2/checkout/orders/"+req.ProviderRef+"/capture", token, nil)
	if err != nil {
		return nil, err
	}

	bookingID := extractBookingID(data)
	p.logger.Info("PayPalProvider: order captured",
		zap.String("order_id", req.ProviderRef),
		zap.Int64("booking_id", bookingID))

	return &provider.ConfirmPaymentResponse{
		BookingID: bookingID,
		Raw:       data,
		Body:      data,
	}, nil
}

// HandleWebhook records the delivery without acting on it; PayPal bookings
// are finalized through the capture endpoint.
func (p *PayPalProvider) HandleWebhook(ctx context.Context, payload []byte, signature string) (*provider.WebhookEvent, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		raw = nil
	}

	return &provider.WebhookEvent{
		Kind:      provider.EventIgnored,
		EventName: getString(raw, "event_type"),
		Raw:       raw,
	}, nil
}

// post sends an authenticated JSON request and returns the decoded payload
// regardless of HTTP status; PayPal error bodies flow back to the client
// unchanged.
func (p *PayPalProvider) post(ctx context.Context, path, token string, body interface{}) (map[string]interface{}, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, &provider.ProviderError{
				Code:    "MARSHAL_ERROR",
				Message: "Failed to prepare request",
				Details: err.Error(),
			}
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, reader)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:    "REQUEST_ERROR",
			Message: "Failed to create request",
			Details: err.Error(),
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("PayPalProvider: API request failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, &provider.ProviderError{
			Code:    "API_ERROR",
			Message: "PayPal API request failed",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:    "RESPONSE_ERROR",
			Message: "Failed to read response",
			Details: err.Error(),
		}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(respBody, &data); err != nil {
		return nil, &provider.ProviderError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse response",
			Details: err.Error(),
		}
	}

	if resp.StatusCode >= 300 {
		p.logger.Warn("PayPalProvider: non-success response passed through",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
	}

	return data, nil
}

// extractBookingID digs purchase_units[0].reference_id out of a capture
// payload. Returns 0 when the structure is missing or not numeric.
func extractBookingID(data map[string]interface{}) int64 {
	units, ok := data["purchase_units"].([]interface{})
	if !ok || len(units) == 0 {
		return 0
	}
	unit, ok := units[0].(map[string]interface{})
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(getString(unit, "reference_id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func getString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
