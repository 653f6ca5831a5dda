package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/infrastructure/database"
	httpServer "github.com/eventback/hallrental/internal/infrastructure/http"
	"github.com/eventback/hallrental/internal/infrastructure/provider"
	"github.com/eventback/hallrental/internal/logger"
	"github.com/eventback/hallrental/internal/usecase"
)

func main() {
	// Load .env when present; real deployments set environment variables
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, zapLogger)

	// Wire providers and usecases
	factory := provider.NewFactory(cfg, zapLogger)
	bookingUsecase := usecase.NewBookingUsecase(repos.Hall, repos.Booking, zapLogger)
	paymentUsecase := usecase.NewPaymentUsecase(factory, repos.Hall, repos.Booking, repos.Payment, repos.Webhook, zapLogger)

	// Start HTTP server
	srv := httpServer.NewServer(cfg, zapLogger, repos, bookingUsecase, paymentUsecase)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Info("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
