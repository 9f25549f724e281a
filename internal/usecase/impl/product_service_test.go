package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	svc         usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func newProductServiceFixture(t *testing.T) *productServiceFixture {
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewProductService(productRepo, newDiscardLogger())
	svc.(*productService).clock = func() time.Time { return fixedNow }

	return &productServiceFixture{svc: svc, productRepo: productRepo}
}

func validCreateProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:        "Desk Lamp",
		Description: "A warm reading lamp",
		Price:       24.99,
		Category:    "Electronics",
		Image:       "https://img.example.com/lamp.png",
		Stock:       12,
		Seller:      "Acme",
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	creatorID := uuid.New()

	f.productRepo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.svc.CreateProduct(context.Background(), creatorID, validCreateProductInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, creatorID, product.CreatedBy)
	assert.Equal(t, entity.Category("Electronics"), product.Category)
	assert.Equal(t, fixedNow, product.CreatedAt)
	assert.Equal(t, fixedNow, product.UpdatedAt)
}

func TestProductService_CreateProduct_InvalidCategory(t *testing.T) {
	f := newProductServiceFixture(t)

	input := validCreateProductInput()
	input.Category = "Weaponry"

	_, err := f.svc.CreateProduct(context.Background(), uuid.New(), input)
	assertAppError(t, err, domainerrors.ErrInvalidCategory)

	f.productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	f := newProductServiceFixture(t)
	id := uuid.New()

	f.productRepo.On("FindProductByID", mock.Anything, id).
		Return(nil, repository.ErrProductNotFound)

	_, err := f.svc.GetProduct(context.Background(), id)
	assertAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProductsByCategory(t *testing.T) {
	f := newProductServiceFixture(t)

	f.productRepo.On("FindProductsByCategory", mock.Anything, entity.Category("Books")).
		Return([]*entity.Product{{ID: uuid.New(), Category: "Books"}}, nil)

	products, err := f.svc.ListProductsByCategory(context.Background(), "Books")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = f.svc.ListProductsByCategory(context.Background(), "books")
	assertAppError(t, err, domainerrors.ErrInvalidCategory)
}

func TestProductService_UpdateProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	ownerID := uuid.New()
	productID := uuid.New()

	stored := &entity.Product{
		ID:        productID,
		Name:      "Desk Lamp",
		Price:     24.99,
		Category:  "Electronics",
		Stock:     12,
		CreatedBy: ownerID,
	}
	f.productRepo.On("FindProductByID", mock.Anything, productID).Return(stored, nil)
	f.productRepo.On("UpdateProduct", mock.Anything, stored).Return(nil)

	newPrice := 19.99
	updated, err := f.svc.UpdateProduct(context.Background(),
		usecase.Requester{ID: ownerID, Role: entity.RoleUser},
		productID,
		&usecase.UpdateProductInput{Price: &newPrice},
	)
	require.NoError(t, err)

	assert.Equal(t, 19.99, updated.Price)
	// Unset fields keep their stored values.
	assert.Equal(t, "Desk Lamp", updated.Name)
	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestProductService_UpdateProduct_Forbidden(t *testing.T) {
	f := newProductServiceFixture(t)
	productID := uuid.New()

	stored := &entity.Product{ID: productID, CreatedBy: uuid.New()}
	f.productRepo.On("FindProductByID", mock.Anything, productID).Return(stored, nil)

	name := "Renamed"
	_, err := f.svc.UpdateProduct(context.Background(),
		usecase.Requester{ID: uuid.New(), Role: entity.RoleUser},
		productID,
		&usecase.UpdateProductInput{Name: &name},
	)
	assertAppError(t, err, domainerrors.ErrForbidden)

	f.productRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_AdminOverridesOwnership(t *testing.T) {
	f := newProductServiceFixture(t)
	productID := uuid.New()

	stored := &entity.Product{ID: productID, CreatedBy: uuid.New()}
	f.productRepo.On("FindProductByID", mock.Anything, productID).Return(stored, nil)
	f.productRepo.On("UpdateProduct", mock.Anything, stored).Return(nil)

	stock := 3
	_, err := f.svc.UpdateProduct(context.Background(),
		usecase.Requester{ID: uuid.New(), Role: entity.RoleAdmin},
		productID,
		&usecase.UpdateProductInput{Stock: &stock},
	)
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_InvalidCategory(t *testing.T) {
	f := newProductServiceFixture(t)
	ownerID := uuid.New()
	productID := uuid.New()

	stored := &entity.Product{ID: productID, CreatedBy: ownerID, Category: "Books"}
	f.productRepo.On("FindProductByID", mock.Anything, productID).Return(stored, nil)

	bad := "Gadgets"
	_, err := f.svc.UpdateProduct(context.Background(),
		usecase.Requester{ID: ownerID, Role: entity.RoleUser},
		productID,
		&usecase.UpdateProductInput{Category: &bad},
	)
	assertAppError(t, err, domainerrors.ErrInvalidCategory)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ownerID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, CreatedBy: ownerID}

	tests := []struct {
		name      string
		requester usecase.Requester
		wantErr   bool
	}{
		{"creator can delete", usecase.Requester{ID: ownerID, Role: entity.RoleUser}, false},
		{"admin can delete", usecase.Requester{ID: uuid.New(), Role: entity.RoleAdmin}, false},
		{"stranger is rejected", usecase.Requester{ID: uuid.New(), Role: entity.RoleUser}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductServiceFixture(t)
			f.productRepo.On("FindProductByID", mock.Anything, productID).Return(stored, nil)
			if !tt.wantErr {
				f.productRepo.On("DeleteProduct", mock.Anything, productID).Return(nil)
			}

			err := f.svc.DeleteProduct(context.Background(), tt.requester, productID)
			if tt.wantErr {
				assertAppError(t, err, domainerrors.ErrForbidden)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
