package middleware

import (
	"strings"

	"go-banksampah/internal/repository"
	"go-banksampah/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(tokens *jwt.Service, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		if msg := authenticate(c, authHeader, tokens, userRepo); msg != "" {
			return c.Status(401).JSON(fiber.Map{"error": msg})
		}
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a token is sent and lets anonymous
// requests through. A token that is sent but invalid is still rejected.
func OptionalAuth(tokens *jwt.Service, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		if msg := authenticate(c, authHeader, tokens, userRepo); msg != "" {
			return c.Status(401).JSON(fiber.Map{"error": msg})
		}
		return c.Next()
	}
}

// authenticate sets the caller locals and returns an error message on failure.
func authenticate(c *fiber.Ctx, authHeader string, tokens *jwt.Service, userRepo repository.UserRepository) string {
	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "Invalid authorization format. Use: Bearer <token>"
	}

	claims, err := tokens.ValidateToken(parts[1])
	if err != nil {
		return "Invalid or expired token"
	}

	// Token must still point at a live account; role is read fresh from the DB
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		return "User not found"
	}

	c.Locals("user_id", user.ID.String())
	c.Locals("user_email", user.Email)
	c.Locals("user_role", user.Role)
	return ""
}

// RequireRole checks the role set by RequireAuth against the allowed roles
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(roles, ", ") + " roles",
		})
	}
}
