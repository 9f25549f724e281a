package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(gateway service.PaymentGateway, logger *slog.Logger) usecase.PaymentUsecase {
	return &paymentService{gateway: gateway, logger: logger}
}

// ProcessPayment creates a payment intent with the external processor. The
// amount arrives in major currency units and is rounded to the smallest
// currency unit, so 12.345 becomes 1235 cents rather than truncating.
func (srv *paymentService) ProcessPayment(ctx context.Context, input *usecase.ProcessPaymentInput) (*usecase.ProcessPaymentOutput, error) {
	amount := int64(math.Round(input.Amount * 100))

	intent, err := srv.gateway.CreateIntent(ctx, amount, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Payment intent created",
		slog.String("intentID", intent.ID),
		slog.Int64("amount", amount),
	)

	return &usecase.ProcessPaymentOutput{ClientSecret: intent.ClientSecret}, nil
}

// PublishableKey returns the processor's publishable API key.
func (srv *paymentService) PublishableKey() string {
	return srv.gateway.PublishableKey()
}
