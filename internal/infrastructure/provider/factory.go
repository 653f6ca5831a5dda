package provider

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eventback/hallrental/internal/config"
	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/domain/provider"
	paypalProvider "github.com/eventback/hallrental/internal/infrastructure/provider/paypal"
	paystackProvider "github.com/eventback/hallrental/internal/infrastructure/provider/paystack"
	stripeProvider "github.com/eventback/hallrental/internal/infrastructure/provider/stripe"
)

// Factory creates payment providers based on the provider type
type Factory struct {
	config *config.Config
	logger *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(config *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		config: config,
		logger: logger,
	}
}

// GetProvider returns a payment provider based on the provider type
func (f *Factory) GetProvider(providerType provider.ProviderType) (provider.PaymentProvider, error) {
	switch providerType {
	case provider.ProviderTypePayPal:
		return f.createPayPalProvider()
	case provider.ProviderTypeStripe:
		return f.createStripeProvider()
	case provider.ProviderTypePaystack:
		return f.createPaystackProvider()
	default:
		return nil, fmt.Errorf("%s: %w", providerType, domainErrors.ErrUnknownProvider)
	}
}

func (f *Factory) createPayPalProvider() (provider.PaymentProvider, error) {
	if f.config.Providers.PayPal.ClientID == "" {
		return nil, fmt.Errorf("PayPal client id not configured")
	}

	return paypalProvider.NewPayPalProvider(f.config.Providers.PayPal, f.logger), nil
}

func (f *Factory) createStripeProvider() (provider.PaymentProvider, error) {
	if f.config.Providers.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("Stripe secret key not configured")
	}

	return stripeProvider.NewStripeProvider(f.config.Providers.Stripe, f.config.Service.SiteURL, f.logger), nil
}

func (f *Factory) createPaystackProvider() (provider.PaymentProvider, error) {
	if f.config.Providers.Paystack.PublicKey == "" {
		return nil, fmt.Errorf("Paystack public key not configured")
	}

	return paystackProvider.NewPaystackProvider(f.config.Providers.Paystack, f.logger), nil
}
