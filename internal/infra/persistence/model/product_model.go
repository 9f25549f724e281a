package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Stock carries a database-level
// non-negative check so no write path can drive it below zero.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Image       string    `gorm:"type:varchar(500)"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0"`
	Seller      string    `gorm:"type:varchar(100)"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
