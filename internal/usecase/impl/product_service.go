package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
	clock       func() time.Time
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
		clock:       time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog entry owned by the creator.
func (srv *productService) CreateProduct(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.Valid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(input.Category)
	}

	now := srv.clock()
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Image:       input.Image,
		Stock:       input.Stock,
		Seller:      input.Seller,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("category", string(product.Category)),
	)

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAllProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all products")
	}

	return products, nil
}

// ListProductsByCategory retrieves the catalog slice for one category.
func (srv *productService) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	c := entity.Category(category)
	if !c.Valid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	products, err := srv.productRepo.FindProductsByCategory(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return products, nil
}

// UpdateProduct mutates a product. Only admins and the product's creator may
// change it; unset input fields leave the stored value untouched.
func (srv *productService) UpdateProduct(ctx context.Context, requester usecase.Requester, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !requester.IsAdmin() && product.CreatedBy != requester.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("you do not have permission to modify this product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.Valid() {
			return nil, domainerrors.ErrInvalidCategory.WithDetails(*input.Category)
		}
		product.Category = category
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Seller != nil {
		product.Seller = *input.Seller
	}
	product.UpdatedAt = srv.clock()

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product. Only admins and the product's creator may
// delete it.
func (srv *productService) DeleteProduct(ctx context.Context, requester usecase.Requester, id uuid.UUID) error {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if !requester.IsAdmin() && product.CreatedBy != requester.ID {
		return domainerrors.ErrForbidden.WithDetails("you do not have permission to delete this product")
	}

	if err := srv.productRepo.DeleteProduct(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}
