package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

// newDiscardLogger returns a logger that swallows everything, keeping test
// output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is the deterministic clock instant used across usecase tests.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// orderServiceFixture bundles the order service under test with its mocks.
type orderServiceFixture struct {
	svc         usecase.OrderUsecase
	txManager   *mockRepo.FakeTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	adjustRepo  *mockRepo.MockStockAdjustmentRepository
	verifier    *mockSvc.MockPaymentVerifier
	publisher   *mockSvc.MockEventPublisher
	qrGenerator *mockSvc.MockQRCodeGenerator
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	adjustRepo := mockRepo.NewMockStockAdjustmentRepository(t)
	verifier := mockSvc.NewMockPaymentVerifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrGenerator := mockSvc.NewMockQRCodeGenerator(t)

	// The transactional factory shares the product mock with the service so
	// one set of expectations covers reads and the clamped decrement.
	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{
			Products:    productRepo,
			Orders:      orderRepo,
			Adjustments: adjustRepo,
		},
	}

	svc := NewOrderService(txManager, orderRepo, productRepo, verifier, publisher, qrGenerator, newDiscardLogger())
	svc.(*orderService).clock = func() time.Time { return fixedNow }

	return &orderServiceFixture{
		svc:         svc,
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		adjustRepo:  adjustRepo,
		verifier:    verifier,
		publisher:   publisher,
		qrGenerator: qrGenerator,
	}
}
