package payment

import (
	"context"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationVerifier(t *testing.T) {
	verifier := NewConfirmationVerifier()

	tests := []struct {
		name         string
		confirmation service.PaymentConfirmation
		wantErr      bool
	}{
		{"captured charge", service.PaymentConfirmation{ID: "pi_1", Status: "succeeded"}, false},
		{"status match is case-insensitive", service.PaymentConfirmation{ID: "pi_1", Status: "SUCCEEDED"}, false},
		{"missing reference id", service.PaymentConfirmation{Status: "succeeded"}, true},
		{"pending charge", service.PaymentConfirmation{ID: "pi_1", Status: "requires_capture"}, true},
		{"empty status", service.PaymentConfirmation{ID: "pi_1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifier.VerifyConfirmation(context.Background(), tt.confirmation)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
