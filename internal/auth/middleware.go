package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/corpkit/company-portal/pkg/util"
)

const claimsKey = "auth_claims"

const (
	msgTokenMissing = "Token is missing"
	msgTokenExpired = "Token has expired"
	msgTokenInvalid = "Invalid token"
)

// AuthMiddleware validates session tokens and exposes their claims to later handlers.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewMissingToken(msgTokenMissing)
	}

	claims, err := m.tokens.Verify(authHeader)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return apperrors.NewExpiredToken(msgTokenExpired)
		}
		return apperrors.NewInvalidToken(msgTokenInvalid)
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the verified claims of the caller.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
