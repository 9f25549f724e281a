package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput carries the account fields an admin may change.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// --- Output DTOs ---

// AuthOutput returns the signed token and account after register/login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	// Register creates an account with the "user" role and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetUser retrieves one account.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves every account. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser mutates an account. Admin only.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
