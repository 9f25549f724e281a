package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_ProcessPayment(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		wantAmount int64
	}{
		{"whole units", 25.00, 2500},
		{"cents survive", 19.99, 1999},
		{"rounds instead of truncating", 12.345, 1235},
		{"float noise rounds cleanly", 0.1 + 0.2, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mockSvc.NewMockPaymentGateway(t)
			gateway.On("CreateIntent", mock.Anything, tt.wantAmount, "buyer@example.com").
				Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

			svc := NewPaymentService(gateway, newDiscardLogger())

			output, err := svc.ProcessPayment(context.Background(), &usecase.ProcessPaymentInput{
				Amount: tt.amount,
				Email:  "buyer@example.com",
			})
			require.NoError(t, err)
			assert.Equal(t, "pi_1_secret", output.ClientSecret)
		})
	}
}

func TestPaymentService_ProcessPayment_GatewayError(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	gateway.On("CreateIntent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	svc := NewPaymentService(gateway, newDiscardLogger())

	_, err := svc.ProcessPayment(context.Background(), &usecase.ProcessPaymentInput{Amount: 5})
	assert.Error(t, err)
}

func TestPaymentService_PublishableKey(t *testing.T) {
	gateway := mockSvc.NewMockPaymentGateway(t)
	gateway.On("PublishableKey").Return("pk_test_123")

	svc := NewPaymentService(gateway, newDiscardLogger())

	assert.Equal(t, "pk_test_123", svc.PublishableKey())
}
