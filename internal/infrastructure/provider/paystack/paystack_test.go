package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/provider"
)

func newTestProvider(secretKey string) *PaystackProvider {
	return NewPaystackProvider(config.PaystackConfig{
		PublicKey: "pk_test_123",
		SecretKey: secretKey,
	}, zap.NewNop())
}

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaystackProvider_CreatePayment(t *testing.T) {
	p := newTestProvider("")
	ctx := context.Background()

	resp, err := p.CreatePayment(ctx, &provider.CreatePaymentRequest{
		BookingID:     5,
		Amount:        decimal.RequireFromString("300.00"),
		CustomerEmail: "ada@example.com",
		HallName:      "Grand Ballroom",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.ProviderRef, "PSK_"))
	assert.Len(t, resp.ProviderRef, len("PSK_")+18)

	body := resp.Body.(map[string]interface{})
	assert.Equal(t, resp.ProviderRef, body["reference"])
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, int64(30000), body["amount_kobo"])
	assert.Equal(t, "pk_test_123", body["public_key"])
}

func TestPaystackProvider_References_AreUnique(t *testing.T) {
	p := newTestProvider("")
	ctx := context.Background()
	req := &provider.CreatePaymentRequest{BookingID: 1, Amount: decimal.NewFromInt(10)}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		resp, err := p.CreatePayment(ctx, req)
		require.NoError(t, err)
		assert.False(t, seen[resp.ProviderRef])
		seen[resp.ProviderRef] = true
	}
}

func TestPaystackProvider_ConfirmPayment_NotSupported(t *testing.T) {
	p := newTestProvider("")

	_, err := p.ConfirmPayment(context.Background(), &provider.ConfirmPaymentRequest{ProviderRef: "PSK_x"})

	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "NOT_SUPPORTED", provErr.Code)
}

func TestPaystackProvider_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"event":"charge.success","data":{"reference":"PSK_abc123"}}`)

	t.Run("charge.success yields succeeded event with reference", func(t *testing.T) {
		p := newTestProvider("")

		evt, err := p.HandleWebhook(ctx, payload, "")
		require.NoError(t, err)

		assert.Equal(t, provider.EventPaymentSucceeded, evt.Kind)
		assert.Equal(t, "charge.success", evt.EventName)
		assert.Equal(t, "PSK_abc123", evt.Reference)
	})

	t.Run("charge.success without data yields empty reference", func(t *testing.T) {
		p := newTestProvider("")

		evt, err := p.HandleWebhook(ctx, []byte(`{"event":"charge.success"}`), "")
		require.NoError(t, err)

		assert.Equal(t, provider.EventPaymentSucceeded, evt.Kind)
		assert.Empty(t, evt.Reference)
	})

	t.Run("other events are ignored", func(t *testing.T) {
		p := newTestProvider("")

		evt, err := p.HandleWebhook(ctx, []byte(`{"event":"transfer.success","data":{}}`), "")
		require.NoError(t, err)

		assert.Equal(t, provider.EventIgnored, evt.Kind)
		assert.Equal(t, "transfer.success", evt.EventName)
	})

	t.Run("valid signature accepted", func(t *testing.T) {
		p := newTestProvider("sk_test_secret")

		evt, err := p.HandleWebhook(ctx, payload, sign("sk_test_secret", payload))
		require.NoError(t, err)
		assert.Equal(t, provider.EventPaymentSucceeded, evt.Kind)
	})

	t.Run("invalid signature rejected", func(t *testing.T) {
		p := newTestProvider("sk_test_secret")

		_, err := p.HandleWebhook(ctx, payload, sign("wrong_secret", payload))

		var provErr *provider.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "SIGNATURE_INVALID", provErr.Code)
	})

	t.Run("missing signature rejected when secret configured", func(t *testing.T) {
		p := newTestProvider("sk_test_secret")

		_, err := p.HandleWebhook(ctx, payload, "")
		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		p := newTestProvider("")

		_, err := p.HandleWebhook(ctx, []byte("not json"), "")

		var provErr *provider.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "PARSE_ERROR", provErr.Code)
	})
}
