package middleware

import (
	"strings"

	"go-sales-network/internal/model"
	"go-sales-network/internal/repository"
	"go-sales-network/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// RequireAuth validates the bearer token and loads the acting user from the
// database, so activity and staff flags are always current. Authentication
// failures are reported before any permission rule runs: missing or invalid
// credentials and inactive accounts are both 401, permission denials are 403.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"detail": "credentials not provided"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"detail": "credentials not provided"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"detail": "credentials not provided"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"detail": "credentials not provided"})
		}

		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"detail": "user inactive", "code": "user_inactive"})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the acting user set by RequireAuth.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(currentUserKey).(*model.User)
	return user
}

// RequireStaff gates routes reserved for staff accounts.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsStaff {
			return c.Status(403).JSON(fiber.Map{"detail": "insufficient permission"})
		}
		return c.Next()
	}
}

// RequireSuperuser gates routes reserved for superuser accounts.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			return c.Status(403).JSON(fiber.Map{"detail": "insufficient permission"})
		}
		return c.Next()
	}
}
