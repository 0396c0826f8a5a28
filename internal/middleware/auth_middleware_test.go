package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-banksampah/internal/model"
	"go-banksampah/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (r *stubUserRepo) FindByEmail(string) (*model.User, error) { return nil, gorm.ErrRecordNotFound }
func (r *stubUserRepo) FindAll() ([]model.User, error)          { return nil, nil }
func (r *stubUserRepo) Create(*model.User) error                { return nil }
func (r *stubUserRepo) Delete(uuid.UUID) error                  { return nil }

func (r *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Update(uuid.UUID, map[string]interface{}) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func setupApp(tokens *jwt.Service, repo *stubUserRepo, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(tokens, repo)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("user_role")})
	})
	app.Get("/test", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	user := &model.User{Email: "rina@example.com", Role: model.RoleUser}
	user.ID = uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{user.ID: user}}
	app := setupApp(tokens, repo)

	token, err := tokens.GenerateToken(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, app, "Bearer "+token))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Token "+token))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer not-a-jwt"))

	foreign, _ := jwt.NewService("other-secret", time.Hour).GenerateToken(user.ID, user.Email, user.Role)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer "+foreign))

	orphan, _ := tokens.GenerateToken(uuid.New(), "ghost@example.com", model.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer "+orphan))
}

func TestRequireRole(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	admin := &model.User{Email: "admin@example.com", Role: model.RoleAdmin}
	admin.ID = uuid.New()
	member := &model.User{Email: "member@example.com", Role: model.RoleUser}
	member.ID = uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{admin.ID: admin, member.ID: member}}
	app := setupApp(tokens, repo, model.RoleAdmin)

	adminToken, _ := tokens.GenerateToken(admin.ID, admin.Email, admin.Role)
	assert.Equal(t, http.StatusOK, get(t, app, "Bearer "+adminToken))

	// a forged role claim does not help: the role comes from the stored user
	memberToken, _ := tokens.GenerateToken(member.ID, member.Email, model.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, get(t, app, "Bearer "+memberToken))
}

func TestOptionalAuth(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	admin := &model.User{Email: "admin@example.com", Role: model.RoleAdmin}
	admin.ID = uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{admin.ID: admin}}

	app := fiber.New()
	app.Get("/test", OptionalAuth(tokens, repo), func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role == "" {
			return c.SendStatus(http.StatusNoContent)
		}
		return c.SendString(role)
	})

	assert.Equal(t, http.StatusNoContent, get(t, app, ""))

	adminToken, _ := tokens.GenerateToken(admin.ID, admin.Email, admin.Role)
	assert.Equal(t, http.StatusOK, get(t, app, "Bearer "+adminToken))

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "Bearer not-a-jwt"))
}
