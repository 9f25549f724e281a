package repository

import (
	"context"

	domainrepository "storefront/internal/domain/repository"
)

// FakeRepositoryFactory hands the repositories it was built with to the
// transaction callback, with no real transaction underneath.
type FakeRepositoryFactory struct {
	Products    *MockProductRepository
	Orders      *MockOrderRepository
	Adjustments *MockStockAdjustmentRepository
}

func (f *FakeRepositoryFactory) ProductRepo() domainrepository.ProductRepository {
	return f.Products
}

func (f *FakeRepositoryFactory) OrderRepo() domainrepository.OrderRepository {
	return f.Orders
}

func (f *FakeRepositoryFactory) StockAdjustmentRepo() domainrepository.StockAdjustmentRepository {
	return f.Adjustments
}

// FakeTransactionManager runs the unit of work directly against the fake
// factory. Commit and rollback semantics are out of scope for usecase tests;
// what matters is which repository calls happen inside the transaction.
type FakeTransactionManager struct {
	Factory *FakeRepositoryFactory

	// ExecuteErr, when set, is returned without invoking the callback.
	ExecuteErr error

	// Calls counts how many transactions were started.
	Calls int
}

func (tm *FakeTransactionManager) Execute(_ context.Context, fn func(repoFactory domainrepository.RepositoryFactory) error) error {
	tm.Calls++
	if tm.ExecuteErr != nil {
		return tm.ExecuteErr
	}

	return fn(tm.Factory)
}
