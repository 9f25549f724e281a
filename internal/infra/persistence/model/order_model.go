package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Kind selects which columns are
// meaningful: the legacy single-product columns or the cart columns plus the
// order_items rows. Orders are never soft-deleted; they are the financial
// record.
type OrderModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind   string    `gorm:"type:varchar(10);not null"`

	// Legacy single-product shape.
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Price     float64    `gorm:"type:decimal(12,2)"`

	// Cart shape.
	Items              []*OrderItemModel `gorm:"foreignKey:OrderID"`
	TotalPrice         float64           `gorm:"type:decimal(12,2)"`
	ShippingAddress    string            `gorm:"type:varchar(255)"`
	ShippingCity       string            `gorm:"type:varchar(100)"`
	ShippingPostalCode string            `gorm:"type:varchar(20)"`
	ShippingCountry    string            `gorm:"type:varchar(100)"`

	PaymentID     string `gorm:"type:varchar(255);not null"`
	PaymentStatus string `gorm:"type:varchar(50);not null"`
	PaidAt        time.Time
	Status        string `gorm:"type:varchar(20);not null;index"`
	DeliveredAt   *time.Time
	DeliveryDate  time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table: one purchase line snapshot
// belonging to a cart order.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Image     string    `gorm:"type:varchar(500)"`
	Price     float64   `gorm:"type:decimal(12,2);not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
