package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order database operations.
type OrderRepository interface {
	// CreateOrder persists a new order record with its item snapshots.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID, items included.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves all orders placed by the given user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAllOrders retrieves every order, newest first. Admin use only.
	FindAllOrders(ctx context.Context) ([]*entity.Order, error)

	// SaveOrder persists status mutations (status, delivered-at) of an existing order.
	SaveOrder(ctx context.Context, order *entity.Order) error
}
