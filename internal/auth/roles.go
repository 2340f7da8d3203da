package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corpkit/company-portal/internal/domain"
	apperrors "github.com/corpkit/company-portal/pkg/util"
)

// RequireRole ensures the authenticated caller holds one of the allowed roles.
// It must run after AuthMiddleware.Handle; without verified claims the request is rejected
// as unauthenticated.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	denied := "Access denied. This resource is only available to: " + domain.JoinRoles(allowed)

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewMissingToken(msgTokenMissing)
		}
		if _, exists := allowedSet[claims.Role]; !exists {
			return apperrors.NewForbidden(denied)
		}
		return c.Next()
	}
}

// Protect returns the handler chain for a protected route: token verification first, then the
// role guard when roles are given.
func Protect(m *AuthMiddleware, roles ...domain.Role) []fiber.Handler {
	chain := []fiber.Handler{m.Handle}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	return chain
}
