package usecase

import "context"

// --- Input DTOs ---

// ProcessPaymentInput asks the payment processor to prepare a charge.
// Amount is in major currency units; the gateway converts to the smallest
// currency unit before talking to the processor.
type ProcessPaymentInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Email  string  `json:"email" validate:"omitempty,email"`
}

// --- Output DTOs ---

// ProcessPaymentOutput returns the client secret the SPA uses to confirm
// the charge directly with the processor.
type ProcessPaymentOutput struct {
	ClientSecret string
}

// PaymentUsecase defines the interface for payment operations.
type PaymentUsecase interface {
	// ProcessPayment creates a payment intent with the external processor.
	ProcessPayment(ctx context.Context, input *ProcessPaymentInput) (*ProcessPaymentOutput, error)

	// PublishableKey returns the processor's publishable API key.
	PublishableKey() string
}
