package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustment marks one applied inventory decrement, keyed by the
// (order, product) pair. Its presence means the decrement for that order
// line has been applied, so reconciliation retries can skip it instead of
// decrementing twice.
type StockAdjustment struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	AppliedAt time.Time
}
