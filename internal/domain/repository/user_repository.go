package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAllUsers retrieves every user account. Admin use only.
	FindAllUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser persists changes to an existing user account.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes a user account by its ID.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
