package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/anatomypro/backend/api/utils"
	"github.com/anatomypro/backend/platform/database/repositories"
	"github.com/anatomypro/backend/platform/services"
)

// AuthRequired verifies the bearer token and loads the account it names
// into the request context.
func AuthRequired(tokens *services.TokenManager, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.SendUnauthorized(c, "missing bearer token")
		}

		userID, _, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.SendUnauthorized(c, "invalid or expired token")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return utils.SendUnauthorized(c, "account no longer exists")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// StaffRequired gates content management endpoints. Must run after
// AuthRequired.
func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !utils.IsStaff(c) {
			return utils.SendForbidden(c, "staff role required")
		}
		return c.Next()
	}
}
