package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	// SiteURL is the public base URL payment flows redirect back to
	SiteURL string `yaml:"site_url"`
}

type ProvidersConfig struct {
	PayPal   PayPalConfig   `yaml:"paypal"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Paystack PaystackConfig `yaml:"paystack"`
}

type PayPalConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Mode         string `yaml:"mode"` // sandbox or live
	Currency     string `yaml:"currency"`
}

type StripeConfig struct {
	PublicKey     string `yaml:"public_key"`
	SecretKey     string `yaml:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret"`
}

type PaystackConfig struct {
	PublicKey string `yaml:"public_key"`
	SecretKey string `yaml:"secret_key"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	Output string `yaml:"output"` // stdout, stderr
}
