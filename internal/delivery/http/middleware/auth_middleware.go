// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
)

// Context keys set by the authentication middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		// Extract user ID
		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "User ID missing from token")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID format in token")
		}

		// Extract role
		role, _ := claims["role"].(string)

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRole, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || role == "" {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// RequesterFromContext rebuilds the authenticated caller from the values the
// Authenticate middleware stored on the Echo context.
func RequesterFromContext(c echo.Context) (usecase.Requester, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return usecase.Requester{}, false
	}

	role, _ := c.Get(ContextKeyRole).(string)

	return usecase.Requester{ID: userID, Role: entity.Role(role)}, true
}
