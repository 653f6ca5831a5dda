package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/model"
	"github.com/eventback/hallrental/internal/usecase"
)

const landingHallLimit = 8

type HallHandler struct {
	bookingUsecase *usecase.BookingUsecase
	providers      config.ProvidersConfig
	siteURL        string
	logger         *zap.Logger
}

func NewHallHandler(bookingUsecase *usecase.BookingUsecase, providers config.ProvidersConfig, siteURL string, logger *zap.Logger) *HallHandler {
	return &HallHandler{
		bookingUsecase: bookingUsecase,
		providers:      providers,
		siteURL:        siteURL,
		logger:         logger,
	}
}

type hallResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	PricePerDay string `json:"price_per_day"`
	ImageURL    string `json:"image_url"`
}

func toHallResponses(halls []model.Hall) []hallResponse {
	out := make([]hallResponse, 0, len(halls))
	for _, h := range halls {
		out = append(out, hallResponse{
			ID:          h.ID,
			Name:        h.Name,
			Description: h.Description,
			Capacity:    h.Capacity,
			PricePerDay: h.PricePerDay.StringFixed(2),
			ImageURL:    h.ImageURL,
		})
	}
	return out
}

// Home returns the landing payload: the first halls plus the public provider
// keys the browser-side payment widgets need.
func (h *HallHandler) Home(c echo.Context) error {
	halls, err := h.bookingUsecase.ListHalls(c.Request().Context(), landingHallLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load halls"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"halls":               toHallResponses(halls),
		"stripe_public_key":   h.providers.Stripe.PublicKey,
		"paypal_client_id":    h.providers.PayPal.ClientID,
		"paypal_currency":     h.providers.PayPal.Currency,
		"paystack_public_key": h.providers.Paystack.PublicKey,
		"site_url":            h.siteURL,
	})
}

// ListHalls returns all halls as JSON
func (h *HallHandler) ListHalls(c echo.Context) error {
	halls, err := h.bookingUsecase.ListHalls(c.Request().Context(), 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load halls"})
	}

	return c.JSON(http.StatusOK, echo.Map{"halls": toHallResponses(halls)})
}
