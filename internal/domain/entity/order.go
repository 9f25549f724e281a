package entity

import (
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Errors returned by order state changes and constructors.
var (
	// ErrInvalidTransition is returned when a status change is not permitted
	// from the order's current status.
	ErrInvalidTransition = errors.New("order: invalid status transition")
	// ErrNoItems is returned when a cart order is created without items.
	ErrNoItems = errors.New("order: cart order requires at least one item")
	// ErrInvalidQuantity is returned when an order item quantity is not positive.
	ErrInvalidQuantity = errors.New("order: item quantity must be greater than zero")
)

// Status is the fulfillment status of an order.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Valid reports whether the status is one of the known order statuses.
func (s Status) Valid() bool {
	return s == StatusProcessing || s == StatusShipped || s == StatusDelivered
}

// allowedTransitions encodes the order status state machine:
// Processing -> Shipped or Delivered, Shipped -> Delivered.
// Delivered is terminal.
var allowedTransitions = map[Status][]Status{
	StatusProcessing: {StatusShipped, StatusDelivered},
	StatusShipped:    {StatusDelivered},
}

// Kind discriminates the two historical order shapes.
type Kind string

const (
	// KindLegacy is a single-product order predating the cart feature.
	// It carries exactly one product with an implicit quantity of one.
	KindLegacy Kind = "legacy"
	// KindCart is an order composed of multiple item snapshots captured at checkout.
	KindCart Kind = "cart"
)

// OrderItem is a purchase line captured at checkout time. Name, image and
// price are snapshots: later catalog edits do not affect the recorded order.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Image     string
	Price     float64
	Quantity  int
}

// Subtotal returns price times quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// ShippingAddress is the destination recorded with a cart order.
type ShippingAddress struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// PaymentInfo is the opaque payment confirmation attached to an order:
// the external payment reference id plus the gateway-reported status.
type PaymentInfo struct {
	ID     string
	Status string
}

// DeliveryLeadTime is the fixed gap between order creation and the
// estimated delivery date.
const DeliveryLeadTime = 7 * 24 * time.Hour

// Order is a durable record of a completed checkout. It is a tagged variant:
// Kind selects between the legacy single-product shape (ProductID/Price) and
// the cart shape (Items/TotalPrice/ShippingAddress).
type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID // The buyer. Owner for read access; admins override.
	Kind   Kind

	// Legacy shape.
	ProductID uuid.UUID
	Price     float64

	// Cart shape.
	Items           []OrderItem
	TotalPrice      float64
	ShippingAddress ShippingAddress

	PaymentInfo  PaymentInfo
	PaidAt       time.Time
	Status       Status
	DeliveredAt  *time.Time
	DeliveryDate time.Time
	CreatedAt    time.Time
}

// NewLegacyOrder creates a single-product order with an implicit quantity of
// one. The recorded price is the product's current catalog price.
func NewLegacyOrder(userID, productID uuid.UUID, price float64, payment PaymentInfo, now time.Time) *Order {
	return &Order{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         KindLegacy,
		ProductID:    productID,
		Price:        price,
		PaymentInfo:  payment,
		PaidAt:       now,
		Status:       StatusProcessing,
		DeliveryDate: now.Add(DeliveryLeadTime),
		CreatedAt:    now,
	}
}

// NewCartOrder creates an order from checkout item snapshots. The total is
// the caller-supplied sum of line snapshots and is never recomputed from the
// current catalog.
func NewCartOrder(userID uuid.UUID, items []OrderItem, totalPrice float64, address ShippingAddress, payment PaymentInfo, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	return &Order{
		ID:              uuid.New(),
		UserID:          userID,
		Kind:            KindCart,
		Items:           items,
		TotalPrice:      totalPrice,
		ShippingAddress: address,
		PaymentInfo:     payment,
		PaidAt:          now,
		Status:          StatusProcessing,
		DeliveryDate:    now.Add(DeliveryLeadTime),
		CreatedAt:       now,
	}, nil
}

// Transition moves the order to the next status if the state machine allows
// it. Entering Delivered stamps DeliveredAt. Any transition attempted from
// Delivered fails: delivered orders are immutable.
func (o *Order) Transition(next Status, now time.Time) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}

	allowed := allowedTransitions[o.Status]
	found := false
	for _, s := range allowed {
		if s == next {
			found = true

			break
		}
	}
	if !found {
		return ErrInvalidTransition
	}

	o.Status = next
	if next == StatusDelivered {
		deliveredAt := now
		o.DeliveredAt = &deliveredAt
	}

	return nil
}

// Lines returns the purchased lines in a shape-independent form: the cart
// items for a cart order, or a single quantity-one line for a legacy order.
// Used by inventory reconciliation.
func (o *Order) Lines() []OrderItem {
	if o.Kind == KindLegacy {
		return []OrderItem{{ProductID: o.ProductID, Price: o.Price, Quantity: 1}}
	}

	return o.Items
}

// Amount returns the money value of the order regardless of its shape.
func (o *Order) Amount() float64 {
	if o.Kind == KindLegacy {
		return o.Price
	}

	return o.TotalPrice
}
