package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/pkg/util/errorutil"
)

// RequireAuthenticated ensures a principal was resolved.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserFromContext(c); !ok {
			return errorutil.NewUnauthenticated("")
		}
		return c.Next()
	}
}

// RequireVerifiedHelper ensures the principal is a helper whose account
// has been verified. Unverified helpers are rejected.
func RequireVerifiedHelper() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return errorutil.NewUnauthenticated("")
		}
		if user.Role != domain.RoleHelper || !user.Verified {
			return errorutil.NewForbidden("verified helper required")
		}
		return c.Next()
	}
}
