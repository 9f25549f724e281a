// Package service contains hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainservice "storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockTokenService) GetTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockPaymentGateway is a testify mock for service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount int64, payerEmail string) (*domainservice.PaymentIntent, error) {
	args := m.Called(ctx, amount, payerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainservice.PaymentIntent), args.Error(1)
}

func (m *MockPaymentGateway) PublishableKey() string {
	args := m.Called()

	return args.String(0)
}

// MockPaymentVerifier is a testify mock for service.PaymentVerifier.
type MockPaymentVerifier struct {
	mock.Mock
}

// NewMockPaymentVerifier creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockPaymentVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentVerifier {
	m := &MockPaymentVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentVerifier) VerifyConfirmation(ctx context.Context, confirmation domainservice.PaymentConfirmation) error {
	args := m.Called(ctx, confirmation)

	return args.Error(0)
}

// MockQRCodeGenerator is a testify mock for service.QRCodeGenerator.
type MockQRCodeGenerator struct {
	mock.Mock
}

// NewMockQRCodeGenerator creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockQRCodeGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeGenerator {
	m := &MockQRCodeGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeGenerator) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockEventPublisher is a testify mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new mock bound to the test lifecycle. Expectations
// are asserted automatically during cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishOrderEvent(ctx context.Context, event *domainservice.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
