// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	apperrors "storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. It is the order
// workflow engine: checkout validation, order creation and inventory
// reconciliation.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	verifier    service.PaymentVerifier
	publisher   service.EventPublisher
	qrGenerator service.QRCodeGenerator
	logger      *slog.Logger
	clock       func() time.Time
}

// NewOrderService is the constructor for orderService. It receives all
// dependencies as interfaces.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	verifier service.PaymentVerifier,
	publisher service.EventPublisher,
	qrGenerator service.QRCodeGenerator,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		verifier:    verifier,
		publisher:   publisher,
		qrGenerator: qrGenerator,
		logger:      logger,
		clock:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder converts a checkout request plus a payment confirmation into a
// durable order record, then reconciles inventory.
//
// Order creation and stock adjustment are two separate durable writes with
// no spanning transaction. The order is the authoritative record: once it is
// persisted the checkout has succeeded, and inventory reconciliation is
// best-effort here and retryable later via ReconcileStock.
func (srv *orderService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input == nil || input.PaymentInfo == nil || input.PaymentInfo.ID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment information is required")
	}

	confirmation := service.PaymentConfirmation{ID: input.PaymentInfo.ID, Status: input.PaymentInfo.Status}
	if err := srv.verifier.VerifyConfirmation(ctx, confirmation); err != nil {
		return nil, domainerrors.ErrPaymentNotConfirmed.WithDetails(err.Error())
	}

	payment := entity.PaymentInfo{ID: input.PaymentInfo.ID, Status: input.PaymentInfo.Status}

	var order *entity.Order
	var err error
	if len(input.OrderItems) == 0 {
		order, err = srv.placeLegacyOrder(ctx, buyerID, input, payment)
	} else {
		order, err = srv.placeCartOrder(ctx, buyerID, input, payment)
	}
	if err != nil {
		return nil, err
	}

	// The order record is durable at this point. Stock reconciliation and
	// event publishing must not fail the checkout.
	if adjErr := srv.applyStockAdjustments(ctx, order); adjErr != nil {
		srv.log(ctx).Warn("Stock reconciliation incomplete, retry via ReconcileStock",
			slog.String("orderID", order.ID.String()),
			slog.String("error", adjErr.Error()),
		)
	}
	srv.publishOrderEvent(ctx, service.OrderEventCreated, order)

	return order, nil
}

// placeLegacyOrder handles the single-product fallback path: an implicit
// quantity of one, priced at the product's current catalog price.
func (srv *orderService) placeLegacyOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.PlaceOrderInput, payment entity.PaymentInfo) (*entity.Order, error) {
	if input.Product == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please provide product information")
	}

	productID, err := uuid.Parse(input.Product)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// The legacy path refuses the sale up front when nothing is on the shelf.
	if !product.InStock() {
		return nil, domainerrors.ErrOutOfStock
	}

	order := entity.NewLegacyOrder(buyerID, product.ID, product.Price, payment, srv.clock())
	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Legacy order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("productID", product.ID.String()),
	)

	return order, nil
}

// placeCartOrder handles the multi-item checkout path. Every referenced
// product must exist before the order record is created; the recorded total
// is the caller-supplied sum of line snapshots.
func (srv *orderService) placeCartOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.PlaceOrderInput, payment entity.PaymentInfo) (*entity.Order, error) {
	if input.ShippingAddress == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping address is required")
	}

	items := make([]entity.OrderItem, 0, len(input.OrderItems))
	for _, line := range input.OrderItems {
		productID, err := uuid.Parse(line.Product)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid product id in cart")
		}
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("item quantity must be greater than zero")
		}

		// Validate existence up front so a stale cart fails the whole
		// checkout instead of being silently skipped during the stock pass.
		if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(line.Product)
			}

			return nil, errors.Wrap(err, "failed to find product")
		}

		items = append(items, entity.OrderItem{
			ProductID: productID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	address := entity.ShippingAddress{
		Address:    input.ShippingAddress.Address,
		City:       input.ShippingAddress.City,
		PostalCode: input.ShippingAddress.PostalCode,
		Country:    input.ShippingAddress.Country,
	}

	order, err := entity.NewCartOrder(buyerID, items, input.TotalPrice, address, payment, srv.clock())
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Cart order placed",
		slog.String("orderID", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.Float64("totalPrice", order.TotalPrice),
	)

	return order, nil
}

// applyStockAdjustments decrements stock for every purchased line. Each line
// runs in its own small transaction pairing the idempotency marker with the
// clamped decrement, so a retry skips lines that already went through and a
// failure on one line does not undo the others.
func (srv *orderService) applyStockAdjustments(ctx context.Context, order *entity.Order) error {
	var failed []error
	now := srv.clock()

	for _, line := range order.Lines() {
		adjustment := &entity.StockAdjustment{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			AppliedAt: now,
		}

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.StockAdjustmentRepo().RecordAdjustment(ctx, adjustment); err != nil {
				return err
			}

			if _, err := repoFactory.ProductRepo().AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
				return err
			}

			return nil
		})
		if err == nil {
			continue
		}
		if errors.Is(err, repository.ErrAdjustmentAlreadyApplied) {
			// A previous attempt already decremented this line.
			continue
		}

		failed = append(failed, errors.Wrapf(err, "adjust stock for product %s", line.ProductID))
	}

	if len(failed) != 0 {
		return apperrors.Join(failed...)
	}

	return nil
}

// ReconcileStock re-runs the idempotent inventory decrement for an order.
func (srv *orderService) ReconcileStock(ctx context.Context, orderID uuid.UUID) error {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	return srv.applyStockAdjustments(ctx, order)
}

// GetOrder retrieves one order, enforcing owner-or-admin read access.
func (srv *orderService) GetOrder(ctx context.Context, requester usecase.Requester, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !requester.IsAdmin() && order.UserID != requester.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("you do not have permission to view this order")
	}

	return order, nil
}

// ListMyOrders retrieves the requester's own orders.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// ListAllOrders retrieves every order with the running total across both
// order shapes. Admin only; the role check sits in the router.
func (srv *orderService) ListAllOrders(ctx context.Context) (*usecase.AllOrdersOutput, error) {
	orders, err := srv.orderRepo.FindAllOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all orders")
	}

	var totalAmount float64
	for _, order := range orders {
		totalAmount += order.Amount()
	}

	return &usecase.AllOrdersOutput{TotalAmount: totalAmount, Orders: orders}, nil
}

// UpdateStatus advances an order through the fulfillment state machine.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if input == nil || input.OrderStatus == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order status is required")
	}

	next := entity.Status(input.OrderStatus)
	if !next.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := order.Transition(next, srv.clock()); err != nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	}

	if err := srv.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", order.ID.String()),
		slog.String("status", string(order.Status)),
	)
	srv.publishOrderEvent(ctx, service.OrderEventStatusUpdated, order)

	return order, nil
}

// OrderTrackingQR renders the order's tracking reference as a PNG QR code.
// Access follows the same owner-or-admin rule as GetOrder.
func (srv *orderService) OrderTrackingQR(ctx context.Context, requester usecase.Requester, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, requester, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrGenerator.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// publishOrderEvent emits an order lifecycle event. Best-effort: failures
// are logged and never surfaced to the buyer.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Status:    string(order.Status),
		Amount:    order.Amount(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("orderID", order.ID.String()),
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
