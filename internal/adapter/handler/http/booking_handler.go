package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/usecase"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	bookingUsecase *usecase.BookingUsecase
	logger         *zap.Logger
}

func NewBookingHandler(bookingUsecase *usecase.BookingUsecase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		logger:         logger,
	}
}

// CheckAvailability reports whether a hall is free over a date range.
// Query params: hall_id, start_date, end_date (YYYY-MM-DD).
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	hallID, err := strconv.ParseInt(c.QueryParam("hall_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
	}
	start, err := time.Parse(dateLayout, c.QueryParam("start_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
	}
	end, err := time.Parse(dateLayout, c.QueryParam("end_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
	}

	available, err := h.bookingUsecase.IsAvailable(c.Request().Context(), hallID, start, end)
	if err != nil {
		if errors.Is(err, domainErrors.ErrHallNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"available": available})
}

type createBookingRequest struct {
	HallID        int64  `json:"hall_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

// CreateBooking creates a pending booking and returns its id and total
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data"})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data"})
	}

	booking, err := h.bookingUsecase.CreateBooking(c.Request().Context(), usecase.CreateBookingInput{
		HallID:        req.HallID,
		StartDate:     start,
		EndDate:       end,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrHallNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
		case errors.Is(err, domainErrors.ErrDatesUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "Hall not available for selected dates"})
		default:
			h.logger.Error("Failed to create booking", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"booking_id":   booking.ID,
		"total_amount": booking.TotalAmount.StringFixed(2),
	})
}
