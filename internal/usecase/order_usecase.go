// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Requester identifies the authenticated caller of an operation, as
// established by the authentication middleware. Role checks inside the
// usecases trust this value.
type Requester struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdmin reports whether the requester carries the admin role.
func (r Requester) IsAdmin() bool {
	return r.Role == entity.RoleAdmin
}

// --- Input DTOs ---

// OrderItemInput is one cart line as submitted at checkout. Price is the
// client-side snapshot taken when the item was added to the cart.
type OrderItemInput struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ShippingAddressInput is the destination supplied with a cart checkout.
type ShippingAddressInput struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PaymentInfoInput carries the external payment reference id and status
// reported by the payment processor after capture.
type PaymentInfoInput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PlaceOrderInput is the checkout request. When OrderItems is empty the
// request falls back to the legacy single-product path using Product.
type PlaceOrderInput struct {
	OrderItems      []OrderItemInput      `json:"orderItems"`
	Product         string                `json:"product"`
	ShippingAddress *ShippingAddressInput `json:"shippingAddress"`
	PaymentInfo     *PaymentInfoInput     `json:"paymentInfo"`
	TotalPrice      float64               `json:"totalPrice"`
}

// UpdateOrderStatusInput is the admin request to advance an order's status.
type UpdateOrderStatusInput struct {
	OrderStatus string `json:"orderStatus"`
}

// --- Output DTOs ---

// AllOrdersOutput is the admin listing of every order with the running
// total across both order shapes.
type AllOrdersOutput struct {
	TotalAmount float64
	Orders      []*entity.Order
}

// OrderUsecase defines the interface for the order workflow.
// This is the contract that the delivery layer (API handlers) depends on.
type OrderUsecase interface {
	// PlaceOrder converts a validated cart (or single-product request) plus
	// a payment confirmation into a durable order, then reconciles inventory.
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves one order, enforcing owner-or-admin read access.
	GetOrder(ctx context.Context, requester Requester, orderID uuid.UUID) (*entity.Order, error)

	// ListMyOrders retrieves the requester's own orders.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders retrieves every order with the running total. Admin only.
	ListAllOrders(ctx context.Context) (*AllOrdersOutput, error)

	// UpdateStatus advances an order through the fulfillment state machine.
	// Admin only; fails once the order is Delivered.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// ReconcileStock re-runs the idempotent inventory decrement for an
	// order. Lines already applied are skipped. Admin only.
	ReconcileStock(ctx context.Context, orderID uuid.UUID) error

	// OrderTrackingQR renders the order's tracking reference as a PNG QR
	// code, enforcing owner-or-admin read access.
	OrderTrackingQR(ctx context.Context, requester Requester, orderID uuid.UUID) ([]byte, error)
}
