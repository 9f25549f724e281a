package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a catalog entry.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Seller      string  `json:"seller" validate:"required"`
}

// UpdateProductInput carries the mutable product fields. Nil pointers leave
// the stored value untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Seller      *string  `json:"seller"`
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// CreateProduct adds a catalog entry owned by the creator.
	CreateProduct(ctx context.Context, creatorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByCategory retrieves the catalog slice for one category.
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// UpdateProduct mutates a product. Requires admin or creator rights.
	UpdateProduct(ctx context.Context, requester Requester, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. Requires admin or creator rights.
	DeleteProduct(ctx context.Context, requester Requester, id uuid.UUID) error
}
