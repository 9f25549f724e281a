// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// CreateProduct persists a new product record.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAllProducts retrieves every product, newest first.
	FindAllProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductsByCategory retrieves all products in the given category, newest first.
	FindProductsByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// AdjustStock changes a product's stock by delta (negative on purchase)
	// in a single atomic statement, flooring the result at zero. It never
	// fails on over-decrement; the clamp applies instead. Returns the
	// product as stored after the adjustment.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error)
}
