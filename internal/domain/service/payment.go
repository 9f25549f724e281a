package service

import "context"

// PaymentIntent is the result of asking the external payment processor to
// prepare a charge. The client secret is handed to the storefront SPA, which
// completes the capture directly with the processor.
type PaymentIntent struct {
	// ID is the processor's reference for the intent.
	ID string
	// ClientSecret authorizes the SPA to confirm the charge.
	ClientSecret string
}

// PaymentGateway is the adapter for the external payment processor.
type PaymentGateway interface {
	// CreateIntent registers a pending charge with the processor.
	// Amount is expressed in the smallest currency unit.
	CreateIntent(ctx context.Context, amount int64, payerEmail string) (*PaymentIntent, error)

	// PublishableKey returns the processor's publishable API key for the SPA.
	PublishableKey() string
}

// PaymentConfirmation is the opaque record asserting a charge was captured,
// supplied by the payment processor via the client at checkout time.
type PaymentConfirmation struct {
	ID     string
	Status string
}

// PaymentVerifier decides whether a supplied payment confirmation is
// acceptable for order creation. It makes the payment trust boundary
// explicit instead of trusting caller-supplied data structurally.
type PaymentVerifier interface {
	// VerifyConfirmation returns nil when the confirmation is acceptable.
	VerifyConfirmation(ctx context.Context, confirmation PaymentConfirmation) error
}
