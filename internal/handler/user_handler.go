package handler

import (
	"go-banksampah/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns all users
// GET /users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return respondError(c, err, "Failed to fetch users.")
	}
	return c.JSON(users)
}

// GetUser returns a single user by ID
// GET /users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "user")
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch user.")
	}
	return c.JSON(user)
}

// UpdateUser applies a partial update
// PUT /users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "user")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}

	user, err := h.userService.UpdateUser(id, &req, callerIsAdmin(c))
	if err != nil {
		return respondError(c, err, "Failed to update user.")
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully.",
		"user":    user,
	})
}

// DeleteUser handles user deletion
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c, "user")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		return respondError(c, err, "Failed to delete user.")
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully."})
}
