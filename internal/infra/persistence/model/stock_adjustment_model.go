package model

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustmentModel mirrors the 'stock_adjustments' table. The composite
// primary key on (order_id, product_id) is what makes inventory
// reconciliation idempotent: a second insert for the same pair violates the
// key and the retry skips the line.
type StockAdjustmentModel struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
	AppliedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockAdjustmentModel) TableName() string {
	return "stock_adjustments"
}
