package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Providers ProvidersConfig `yaml:"providers"`
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

func LoadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hallrental.yaml"
	}

	// Ensure absolute path
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Read config file
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyEnvOverrides()

	return &cfg, nil
}

// applyEnvOverrides lets credentials and the public site URL come from the
// environment (or a .env file) so the YAML file can be committed without
// secrets.
func (c *Config) applyEnvOverrides() {
	overrideString(&c.Service.SiteURL, "SITE_URL")

	overrideString(&c.Providers.PayPal.ClientID, "PAYPAL_CLIENT_ID")
	overrideString(&c.Providers.PayPal.ClientSecret, "PAYPAL_CLIENT_SECRET")
	overrideString(&c.Providers.PayPal.Mode, "PAYPAL_MODE")
	overrideString(&c.Providers.PayPal.Currency, "PAYPAL_CURRENCY")

	overrideString(&c.Providers.Stripe.PublicKey, "STRIPE_PUBLIC_KEY")
	overrideString(&c.Providers.Stripe.SecretKey, "STRIPE_SECRET_KEY")
	overrideString(&c.Providers.Stripe.WebhookSecret, "STRIPE_WEBHOOK_SECRET")

	overrideString(&c.Providers.Paystack.PublicKey, "PAYSTACK_PUBLIC_KEY")
	overrideString(&c.Providers.Paystack.SecretKey, "PAYSTACK_SECRET_KEY")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
