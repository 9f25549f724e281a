package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}

func TestOrderService_PlaceOrder_MissingPayment(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		Product: uuid.New().String(),
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = f.svc.PlaceOrder(context.Background(), uuid.New(), nil)
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_PaymentNotConfirmed(t *testing.T) {
	f := newOrderServiceFixture(t)

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		Product:     uuid.New().String(),
		PaymentInfo: &usecase.PaymentInfoInput{ID: "pi_1", Status: "requires_capture"},
	})
	assertAppError(t, err, domainerrors.ErrPaymentNotConfirmed)

	f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_LegacyProductMissing(t *testing.T) {
	f := newOrderServiceFixture(t)
	productID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		Product:     productID.String(),
		PaymentInfo: validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_PlaceOrder_LegacyOutOfStock(t *testing.T) {
	f := newOrderServiceFixture(t)
	productID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Name: "Lamp", Price: 19.99, Stock: 0}, nil)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		Product:     productID.String(),
		PaymentInfo: validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrOutOfStock)

	f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_LegacyMissingProductField(t *testing.T) {
	f := newOrderServiceFixture(t)

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		PaymentInfo: validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_CartMissingAddress(t *testing.T) {
	f := newOrderServiceFixture(t)

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		OrderItems: []usecase.OrderItemInput{
			{Product: uuid.New().String(), Price: 5.00, Quantity: 1},
		},
		TotalPrice:  5.00,
		PaymentInfo: validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_CartUnknownProduct(t *testing.T) {
	f := newOrderServiceFixture(t)
	missingID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, missingID).
		Return(nil, repository.ErrProductNotFound)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		OrderItems: []usecase.OrderItemInput{
			{Product: missingID.String(), Price: 5.00, Quantity: 1},
		},
		ShippingAddress: &usecase.ShippingAddressInput{Address: "1 Main St"},
		TotalPrice:      5.00,
		PaymentInfo:     validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrProductNotFound)

	// A stale cart fails the whole checkout before any order exists.
	f.orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_CartBadQuantity(t *testing.T) {
	f := newOrderServiceFixture(t)

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), &usecase.PlaceOrderInput{
		OrderItems: []usecase.OrderItemInput{
			{Product: uuid.New().String(), Price: 5.00, Quantity: 0},
		},
		ShippingAddress: &usecase.ShippingAddressInput{Address: "1 Main St"},
		PaymentInfo:     validPayment(),
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	f := newOrderServiceFixture(t)
	orderID := uuid.New()

	delivered := &entity.Order{ID: orderID, Kind: entity.KindLegacy, Status: entity.StatusDelivered}
	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(delivered, nil)

	_, err := f.svc.UpdateStatus(context.Background(), orderID, &usecase.UpdateOrderStatusInput{OrderStatus: "Shipped"})
	assertAppError(t, err, domainerrors.ErrInvalidTransition)

	f.orderRepo.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New(), &usecase.UpdateOrderStatusInput{OrderStatus: "Lost"})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = f.svc.UpdateStatus(context.Background(), uuid.New(), nil)
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	f := newOrderServiceFixture(t)
	orderID := uuid.New()

	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := f.svc.UpdateStatus(context.Background(), orderID, &usecase.UpdateOrderStatusInput{OrderStatus: "Shipped"})
	assertAppError(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ReconcileStock_OrderNotFound(t *testing.T) {
	f := newOrderServiceFixture(t)
	orderID := uuid.New()

	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := f.svc.ReconcileStock(context.Background(), orderID)
	assertAppError(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newOrderServiceFixture(t)
	orderID := uuid.New()

	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := f.svc.GetOrder(context.Background(), usecase.Requester{ID: uuid.New()}, orderID)
	assertAppError(t, err, domainerrors.ErrOrderNotFound)
}
