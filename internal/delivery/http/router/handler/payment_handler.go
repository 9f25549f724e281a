package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProcessPayment creates a payment intent with the external processor and
// returns the client secret the SPA uses to confirm the charge.
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var input *usecase.ProcessPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.ProcessPayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"client_secret": output.ClientSecret,
	}, "Payment intent created")
}

// PublishableKey returns the processor's publishable API key.
func (h *PaymentHandler) PublishableKey(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"publishable_key": h.uc.PublishableKey(),
	}, "")
}
