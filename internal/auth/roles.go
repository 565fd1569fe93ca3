package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-booking/internal/repository"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// RequireAdmin ensures the authenticated caller holds the admin role. The
// account is re-read from storage rather than trusted from the principal, so
// a role revoked after token issuance takes effect immediately.
func RequireAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.UserID == "" {
			return apperrors.NewUnauthorized("authentication required")
		}

		user, err := users.GetByID(c.Context(), principal.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorizedCode("USER_NOT_FOUND", "user not found")
			}
			return apperrors.MapError(err)
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}
