package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain/service"
)

// fakeGateway is an in-process PaymentGateway for development and tests.
// It issues intents that are never charged anywhere.
type fakeGateway struct{}

// NewFakeGateway is the constructor for fakeGateway.
func NewFakeGateway() service.PaymentGateway {
	return &fakeGateway{}
}

// CreateIntent fabricates a payment intent with a random reference.
func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, _ string) (*service.PaymentIntent, error) {
	id := fmt.Sprintf("pi_fake_%s", uuid.New().String())

	return &service.PaymentIntent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%d", id, amount),
	}, nil
}

// PublishableKey returns a placeholder key.
func (g *fakeGateway) PublishableKey() string {
	return "pk_test_fake"
}
