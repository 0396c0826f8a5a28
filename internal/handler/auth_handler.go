package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new user
// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req service.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	user, err := h.authService.Signup(&req, callerIsAdmin(c))
	if err != nil {
		return respondError(c, err, "Failed to create user.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully.",
		"user":    user.ToResponse(),
	})
}

// Login handles user authentication
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err, "Login failed.")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful.",
		"token":   response.Token,
		"user":    response.User,
	})
}

// ValidateTokenRequest represents the validate token request body
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateToken handles JWT token validation
// POST /validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	if req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is required"})
	}

	user, err := h.authService.ValidateToken(req.Token)
	if err != nil {
		return respondError(c, err, "Failed to validate token")
	}

	return c.JSON(fiber.Map{"user": user})
}

// Me returns the caller's profile
// GET /me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return invalidID(c, "user")
	}

	user, err := h.authService.Me(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch profile")
	}

	return c.JSON(user)
}
