package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of catalog categories a product can belong to.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryHomeKitchen Category = "Home & Kitchen"
	CategoryBooks       Category = "Books"
)

// Categories lists every valid product category, in display order.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryClothing, CategoryHomeKitchen, CategoryBooks}
}

// Valid reports whether the category is one of the fixed catalog categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryHomeKitchen, CategoryBooks:
		return true
	}

	return false
}

// Product represents a catalog entry offered for sale.
// Stock is never negative: purchases decrement it with a floor at zero.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name        string    // Display name, at most 100 characters.
	Description string    // Free-form product description.
	Price       float64   // Unit price, non-negative.
	Category    Category  // One of the fixed catalog categories.
	Image       string    // URL of the product image.
	Stock       int       // Units available for sale, non-negative.
	Seller      string    // Display name of the seller.
	CreatedBy   uuid.UUID // The user who created this product; holds mutation rights alongside admins.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this product.
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ClampedStock returns the stock level after removing quantity units,
// floored at zero. The persistence layer applies the same clamp atomically;
// this helper exists for in-memory bookkeeping and tests.
func ClampedStock(stock, quantity int) int {
	if remaining := stock - quantity; remaining > 0 {
		return remaining
	}

	return 0
}
