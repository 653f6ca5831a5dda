package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/eventback/hallrental/internal/adapter/handler/http"
	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/infrastructure/database"
	"github.com/eventback/hallrental/internal/logger"
	"github.com/eventback/hallrental/internal/usecase"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories

	bookingUsecase *usecase.BookingUsecase
	paymentUsecase *usecase.PaymentUsecase
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	repos *database.Repositories,
	bookingUsecase *usecase.BookingUsecase,
	paymentUsecase *usecase.PaymentUsecase,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.HTTP.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	return &Server{
		config:         cfg,
		logger:         log,
		echo:           e,
		repos:          repos,
		bookingUsecase: bookingUsecase,
		paymentUsecase: paymentUsecase,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize handlers
	hallHandler := handlers.NewHallHandler(s.bookingUsecase, s.config.Providers, s.config.Service.SiteURL, s.logger)
	bookingHandler := handlers.NewBookingHandler(s.bookingUsecase, s.logger)
	paymentHandler := handlers.NewPaymentHandler(s.paymentUsecase, s.logger)
	webhookHandler := handlers.NewWebhookHandler(s.paymentUsecase, s.logger)

	// Landing page payload
	s.echo.GET("/", hallHandler.Home)

	// Booking API
	api := s.echo.Group("/api")
	api.GET("/halls/", hallHandler.ListHalls)
	api.GET("/availability/", bookingHandler.CheckAvailability)
	api.POST("/book/", bookingHandler.CreateBooking)

	// Payment orchestration
	api.POST("/paypal/create-order/", paymentHandler.PayPalCreateOrder)
	api.POST("/paypal/capture-order/", paymentHandler.PayPalCaptureOrder)
	api.POST("/stripe/create-checkout-session/", paymentHandler.StripeCreateCheckoutSession)
	api.POST("/paystack/initialize/", paymentHandler.PaystackInitialize)

	// Provider notification callbacks
	webhooks := s.echo.Group("/webhooks")
	webhooks.POST("/paypal/", webhookHandler.PayPal)
	webhooks.POST("/stripe/", webhookHandler.Stripe)
	webhooks.POST("/paystack/", webhookHandler.Paystack)
}
