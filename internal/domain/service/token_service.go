package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts the issuing and validation of access tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// GetTokenDuration returns the configured access token lifetime.
	GetTokenDuration() time.Duration
}
