package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/internhub/internship-service/internal/domain"
	apperrors "github.com/internhub/internship-service/pkg/util/errorutil"
)

// RequireRole ensures the principal has one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireSelfOrRole lets callers reach their own resources, identified by the
// named path param, and lets the listed roles reach anyone's.
func RequireSelfOrRole(param string, roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}
		if c.Params(param) == strconv.FormatInt(principal.UserID, 10) {
			return c.Next()
		}
		return apperrors.NewForbidden("not allowed to access another user's resources")
	}
}
