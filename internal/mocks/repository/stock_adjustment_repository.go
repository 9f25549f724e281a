package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStockAdjustmentRepository is a testify mock for repository.StockAdjustmentRepository.
type MockStockAdjustmentRepository struct {
	mock.Mock
}

// NewMockStockAdjustmentRepository creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockStockAdjustmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStockAdjustmentRepository {
	m := &MockStockAdjustmentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStockAdjustmentRepository) RecordAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error {
	args := m.Called(ctx, adjustment)

	return args.Error(0)
}

func (m *MockStockAdjustmentRepository) FindAdjustmentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.StockAdjustment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StockAdjustment), args.Error(1)
}
