package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/domain/provider"
	"github.com/eventback/hallrental/internal/usecase"
)

type PaymentHandler struct {
	paymentUsecase *usecase.PaymentUsecase
	logger         *zap.Logger
}

func NewPaymentHandler(paymentUsecase *usecase.PaymentUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		logger:         logger,
	}
}

type createPaymentRequest struct {
	BookingID int64 `json:"booking_id" validate:"required"`
}

type captureOrderRequest struct {
	OrderID string `json:"orderID" validate:"required"`
}

// PayPalCreateOrder creates a PayPal order for the booking and returns the
// raw order body
func (h *PaymentHandler) PayPalCreateOrder(c echo.Context) error {
	return h.createPayment(c, provider.ProviderTypePayPal)
}

// PayPalCaptureOrder captures a PayPal order and returns the raw capture body
func (h *PaymentHandler) PayPalCaptureOrder(c echo.Context) error {
	var req captureOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data"})
	}

	body, err := h.paymentUsecase.CapturePayPalOrder(c.Request().Context(), req.OrderID)
	if err != nil {
		h.logger.Error("PayPal capture failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "capture failed"})
	}

	return c.JSON(http.StatusOK, body)
}

// StripeCreateCheckoutSession creates a hosted checkout session for the
// booking and returns its id and URL
func (h *PaymentHandler) StripeCreateCheckoutSession(c echo.Context) error {
	return h.createPayment(c, provider.ProviderTypeStripe)
}

// PaystackInitialize mints a Paystack reference for the booking and returns
// what the inline widget needs
func (h *PaymentHandler) PaystackInitialize(c echo.Context) error {
	return h.createPayment(c, provider.ProviderTypePaystack)
}

func (h *PaymentHandler) createPayment(c echo.Context, providerType provider.ProviderType) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data"})
	}

	body, err := h.paymentUsecase.CreatePayment(c.Request().Context(), providerType, req.BookingID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		h.logger.Error("Payment creation failed",
			zap.String("provider", string(providerType)),
			zap.Int64("booking_id", req.BookingID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment creation failed"})
	}

	return c.JSON(http.StatusOK, body)
}
