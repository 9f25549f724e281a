package payment

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
)

// NewPaymentGateway selects the gateway implementation from configuration:
// Stripe when credentials are present, the in-process fake otherwise.
func NewPaymentGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe != nil && cfg.Stripe.SecretKey != "" {
		logger.Info("Using Stripe payment gateway")

		return NewStripeGateway(cfg.Stripe)
	}

	logger.Warn("Stripe is not configured, using fake payment gateway")

	return NewFakeGateway(), nil
}
