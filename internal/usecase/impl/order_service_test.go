package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validPayment() *usecase.PaymentInfoInput {
	return &usecase.PaymentInfoInput{ID: "pi_123", Status: "succeeded"}
}

func TestOrderService_PlaceOrder_Legacy(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Lamp", Price: 19.99, Stock: 4}

	f.verifier.On("VerifyConfirmation", mock.Anything, service.PaymentConfirmation{ID: "pi_123", Status: "succeeded"}).
		Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, productID).Return(product, nil)
	f.orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.adjustRepo.On("RecordAdjustment", mock.Anything, mock.AnythingOfType("*entity.StockAdjustment")).Return(nil)
	f.productRepo.On("AdjustStock", mock.Anything, productID, -1).
		Return(&entity.Product{ID: productID, Stock: 3}, nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := f.svc.PlaceOrder(ctx, buyerID, &usecase.PlaceOrderInput{
		Product:     productID.String(),
		PaymentInfo: validPayment(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.KindLegacy, order.Kind)
	assert.Equal(t, buyerID, order.UserID)
	assert.Equal(t, productID, order.ProductID)
	// The recorded price is the catalog price, never client input.
	assert.Equal(t, 19.99, order.Price)
	assert.Equal(t, entity.StatusProcessing, order.Status)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), order.DeliveryDate)
	assert.Equal(t, 1, f.txManager.Calls)
}

func TestOrderService_PlaceOrder_Cart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	buyerID := uuid.New()
	mugID := uuid.New()
	lampID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, mugID).
		Return(&entity.Product{ID: mugID, Stock: 10}, nil)
	f.productRepo.On("FindProductByID", mock.Anything, lampID).
		Return(&entity.Product{ID: lampID, Stock: 10}, nil)
	f.orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.adjustRepo.On("RecordAdjustment", mock.Anything, mock.AnythingOfType("*entity.StockAdjustment")).Return(nil)
	f.productRepo.On("AdjustStock", mock.Anything, mugID, -2).
		Return(&entity.Product{ID: mugID, Stock: 8}, nil)
	f.productRepo.On("AdjustStock", mock.Anything, lampID, -1).
		Return(&entity.Product{ID: lampID, Stock: 9}, nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := f.svc.PlaceOrder(ctx, buyerID, &usecase.PlaceOrderInput{
		OrderItems: []usecase.OrderItemInput{
			{Product: mugID.String(), Name: "Mug", Price: 5.00, Quantity: 2},
			{Product: lampID.String(), Name: "Lamp", Price: 15.00, Quantity: 1},
		},
		ShippingAddress: &usecase.ShippingAddressInput{
			Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US",
		},
		TotalPrice:  25.00,
		PaymentInfo: validPayment(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.KindCart, order.Kind)
	assert.Len(t, order.Items, 2)
	// The total is the caller-supplied snapshot sum, not recomputed.
	assert.Equal(t, 25.00, order.TotalPrice)
	assert.Equal(t, "Springfield", order.ShippingAddress.City)
	// One transaction per line.
	assert.Equal(t, 2, f.txManager.Calls)
}

func TestOrderService_PlaceOrder_SkipsAlreadyAppliedLines(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Price: 7.00, Stock: 1}, nil)
	f.orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	// A previous attempt already recorded this line: the decrement must not run again.
	f.adjustRepo.On("RecordAdjustment", mock.Anything, mock.AnythingOfType("*entity.StockAdjustment")).
		Return(repository.ErrAdjustmentAlreadyApplied)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Product:     productID.String(),
		PaymentInfo: validPayment(),
	})
	require.NoError(t, err)

	f.productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_StockFailureDoesNotFailCheckout(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.verifier.On("VerifyConfirmation", mock.Anything, mock.Anything).Return(nil)
	f.productRepo.On("FindProductByID", mock.Anything, productID).
		Return(&entity.Product{ID: productID, Price: 3.00, Stock: 2}, nil)
	f.orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)

	// Every stock transaction fails; the order record is already durable.
	f.txManager.ExecuteErr = assert.AnError

	order, err := f.svc.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		Product:     productID.String(),
		PaymentInfo: validPayment(),
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ReconcileStock(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()

	order := &entity.Order{
		ID:     orderID,
		Kind:   entity.KindCart,
		Items:  []entity.OrderItem{{ProductID: productID, Quantity: 3}},
		Status: entity.StatusProcessing,
	}

	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(order, nil)
	f.adjustRepo.On("RecordAdjustment", mock.Anything, mock.AnythingOfType("*entity.StockAdjustment")).Return(nil)
	f.productRepo.On("AdjustStock", mock.Anything, productID, -3).
		Return(&entity.Product{ID: productID, Stock: 0}, nil)

	require.NoError(t, f.svc.ReconcileStock(ctx, orderID))
	assert.Equal(t, 1, f.txManager.Calls)
}

func TestOrderService_GetOrder_Access(t *testing.T) {
	ownerID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: ownerID, Kind: entity.KindLegacy}

	tests := []struct {
		name      string
		requester usecase.Requester
		wantErr   bool
	}{
		{"owner can read", usecase.Requester{ID: ownerID, Role: entity.RoleUser}, false},
		{"admin can read", usecase.Requester{ID: uuid.New(), Role: entity.RoleAdmin}, false},
		{"stranger is rejected", usecase.Requester{ID: uuid.New(), Role: entity.RoleUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderServiceFixture(t)
			f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(order, nil)

			got, err := f.svc.GetOrder(context.Background(), tt.requester, orderID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, orderID, got.ID)
			}
		})
	}
}

func TestOrderService_ListAllOrders_SumsBothShapes(t *testing.T) {
	f := newOrderServiceFixture(t)

	orders := []*entity.Order{
		{ID: uuid.New(), Kind: entity.KindLegacy, Price: 10.00},
		{ID: uuid.New(), Kind: entity.KindCart, TotalPrice: 25.50},
		{ID: uuid.New(), Kind: entity.KindLegacy, Price: 4.50},
	}
	f.orderRepo.On("FindAllOrders", mock.Anything).Return(orders, nil)

	output, err := f.svc.ListAllOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40.00, output.TotalAmount)
	assert.Len(t, output.Orders, 3)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, Kind: entity.KindLegacy, Status: entity.StatusShipped}

	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(order, nil)
	f.orderRepo.On("SaveOrder", mock.Anything, order).Return(nil)
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	updated, err := f.svc.UpdateStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{OrderStatus: "Delivered"})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDelivered, updated.Status)
	require.NotNil(t, updated.DeliveredAt)
	assert.Equal(t, fixedNow, *updated.DeliveredAt)
}

func TestOrderService_OrderTrackingQR(t *testing.T) {
	f := newOrderServiceFixture(t)
	ownerID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: ownerID, Kind: entity.KindLegacy}
	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(order, nil)
	f.qrGenerator.On("GenerateOrderQR", orderID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.svc.OrderTrackingQR(context.Background(),
		usecase.Requester{ID: ownerID, Role: entity.RoleUser}, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_OrderTrackingQR_StrangerRejected(t *testing.T) {
	f := newOrderServiceFixture(t)
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: uuid.New(), Kind: entity.KindLegacy}
	f.orderRepo.On("FindOrderByID", mock.Anything, orderID).Return(order, nil)

	_, err := f.svc.OrderTrackingQR(context.Background(),
		usecase.Requester{ID: uuid.New(), Role: entity.RoleUser}, orderID)
	assert.Error(t, err)

	f.qrGenerator.AssertNotCalled(t, "GenerateOrderQR", mock.Anything)
}

func TestOrderService_ListMyOrders(t *testing.T) {
	f := newOrderServiceFixture(t)
	userID := uuid.New()

	f.orderRepo.On("FindOrdersByUser", mock.Anything, userID).
		Return([]*entity.Order{{ID: uuid.New(), UserID: userID}}, nil)

	orders, err := f.svc.ListMyOrders(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
