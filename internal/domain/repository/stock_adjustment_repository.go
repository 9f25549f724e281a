package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for stock adjustment persistence.
var (
	// ErrAdjustmentAlreadyApplied is returned when an adjustment for the
	// same (order, product) pair has already been recorded.
	ErrAdjustmentAlreadyApplied = errors.New("stock adjustment already applied")
)

// StockAdjustmentRepository records applied inventory decrements so that
// reconciliation can be retried per order without double-decrementing.
type StockAdjustmentRepository interface {
	// RecordAdjustment persists the marker row for one order line.
	// Returns ErrAdjustmentAlreadyApplied when the (order, product) pair
	// is already recorded.
	RecordAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error

	// FindAdjustmentsByOrder retrieves the adjustments recorded for an order.
	FindAdjustmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.StockAdjustment, error)
}
