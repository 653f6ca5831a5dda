package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/domain/provider"
	"github.com/eventback/hallrental/internal/usecase"
)

// WebhookHandler terminates provider notification callbacks. Every route
// acknowledges with 200 regardless of what processing decided, so providers
// never retry events we have already recorded.
type WebhookHandler struct {
	paymentUsecase *usecase.PaymentUsecase
	logger         *zap.Logger
}

func NewWebhookHandler(paymentUsecase *usecase.PaymentUsecase, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		paymentUsecase: paymentUsecase,
		logger:         logger,
	}
}

func (h *WebhookHandler) PayPal(c echo.Context) error {
	return h.handle(c, provider.ProviderTypePayPal, "")
}

func (h *WebhookHandler) Stripe(c echo.Context) error {
	return h.handle(c, provider.ProviderTypeStripe, c.Request().Header.Get("Stripe-Signature"))
}

func (h *WebhookHandler) Paystack(c echo.Context) error {
	return h.handle(c, provider.ProviderTypePaystack, c.Request().Header.Get("X-Paystack-Signature"))
}

func (h *WebhookHandler) handle(c echo.Context, providerType provider.ProviderType, signature string) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Failed to read webhook body",
			zap.String("provider", string(providerType)),
			zap.Error(err))
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}

	h.paymentUsecase.HandleWebhook(c.Request().Context(), providerType, payload, signature)

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
