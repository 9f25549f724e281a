package payment

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"storefront/internal/domain/service"
)

// confirmedStatus is the gateway status required before an order may be created.
const confirmedStatus = "succeeded"

// confirmationVerifier implements the PaymentVerifier interface. It accepts a
// confirmation only when it carries a payment reference and a succeeded
// status. Checkout requests remain the trust boundary: anything weaker than a
// captured charge is rejected before an order record exists.
type confirmationVerifier struct{}

// NewConfirmationVerifier is the constructor for confirmationVerifier.
func NewConfirmationVerifier() service.PaymentVerifier {
	return &confirmationVerifier{}
}

// VerifyConfirmation returns nil when the confirmation is acceptable.
func (v *confirmationVerifier) VerifyConfirmation(_ context.Context, confirmation service.PaymentConfirmation) error {
	if confirmation.ID == "" {
		return errors.New("payment confirmation is missing a reference id")
	}
	if !strings.EqualFold(confirmation.Status, confirmedStatus) {
		return errors.Errorf("payment status is %q, expected %q", confirmation.Status, confirmedStatus)
	}

	return nil
}
