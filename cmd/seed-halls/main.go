package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eventback/hallrental/internal/config"
	"github.com/eventback/hallrental/internal/domain/model"
	"github.com/eventback/hallrental/internal/infrastructure/database"
	"github.com/eventback/hallrental/internal/logger"
)

type hallSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Capacity    int    `yaml:"capacity"`
	PricePerDay string `yaml:"price_per_day"`
	ImageURL    string `yaml:"image_url"`
}

type seedFile struct {
	Halls []hallSeed `yaml:"halls"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	seedPath := os.Getenv("HALLS_FILE")
	if seedPath == "" {
		seedPath = "./configs/halls.yaml"
	}

	halls, err := loadHallsFromYAML(seedPath)
	if err != nil {
		zapLogger.Fatal("Failed to load halls from YAML",
			zap.String("path", seedPath),
			zap.Error(err))
	}

	seeded := 0
	for _, hall := range halls {
		var existing model.Hall
		result := db.Where("name = ?", hall.Name).Limit(1).Find(&existing)
		if result.Error != nil {
			zapLogger.Fatal("Failed to look up hall",
				zap.String("name", hall.Name),
				zap.Error(result.Error))
		}
		if result.RowsAffected > 0 {
			hall.ID = existing.ID
		}

		if err := db.Save(&hall).Error; err != nil {
			zapLogger.Fatal("Failed to save hall",
				zap.String("name", hall.Name),
				zap.Error(err))
		}
		seeded++
	}

	zapLogger.Info("Hall seeding complete",
		zap.String("path", seedPath),
		zap.Int("halls", seeded))
}

func loadHallsFromYAML(path string) ([]model.Hall, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	halls := make([]model.Hall, 0, len(file.Halls))
	for _, seed := range file.Halls {
		price, err := decimal.NewFromString(seed.PricePerDay)
		if err != nil {
			return nil, fmt.Errorf("invalid price for hall %q: %w", seed.Name, err)
		}
		halls = append(halls, model.Hall{
			Name:        seed.Name,
			Description: seed.Description,
			Capacity:    seed.Capacity,
			PricePerDay: price,
			ImageURL:    seed.ImageURL,
		})
	}

	return halls, nil
}
