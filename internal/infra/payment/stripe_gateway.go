// Package payment provides the adapters for the external payment processor.
package payment

import (
	"context"

	"github.com/pkg/errors"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"storefront/config"
	"storefront/internal/domain/service"
)

const defaultCurrency = "usd"

// stripeGateway implements the PaymentGateway interface against the Stripe API.
type stripeGateway struct {
	api            *client.API
	publishableKey string
	currency       string
}

// NewStripeGateway is the constructor for stripeGateway. It builds a
// dedicated API client instead of mutating the package-global key.
func NewStripeGateway(cfg *config.StripeConfig) (service.PaymentGateway, error) {
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	currency := cfg.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeGateway{
		api:            api,
		publishableKey: cfg.PublishableKey,
		currency:       currency,
	}, nil
}

// CreateIntent registers a pending charge with Stripe. Amount is in the
// smallest currency unit.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, payerEmail string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(g.currency),
	}
	params.Context = ctx
	if payerEmail != "" {
		params.ReceiptEmail = stripe.String(payerEmail)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stripe payment intent")
	}

	return &service.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// PublishableKey returns the processor's publishable API key for the SPA.
func (g *stripeGateway) PublishableKey() string {
	return g.publishableKey
}
