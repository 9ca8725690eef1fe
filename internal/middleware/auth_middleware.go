package middleware

import (
	"strings"

	"go-retail-admin/internal/model"
	"go-retail-admin/internal/store"
	"go-retail-admin/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets session info in context.
// The token's session id must match the account's current one, so a login
// from a second place invalidates older tokens.
func RequireAuth(accounts *store.Table[string, model.Account]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := token.Validate(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		account, err := accounts.Get(claims.Email)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Account not found"})
		}

		if account.SessionID != claims.SessionID {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in somewhere else)"})
		}

		c.Locals("session_email", claims.Email)
		c.Locals("session_role", account.Role)

		return c.Next()
	}
}

// RequireRole gates a route on the session's account role.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("session_role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(roles, ", ") + " roles",
		})
	}
}
