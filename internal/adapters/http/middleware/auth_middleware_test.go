package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/config"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) (*fiber.App, *services.AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  60,
			RefreshTokenDays: 7,
		},
	}
	authService := services.NewAuthService(store.Users, store.RefreshTokens, store.Notifications, cfg)

	app := fiber.New()
	app.Get("/protected", Protected(authService), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/super", Protected(authService), SuperAdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, authService, store
}

func signupStudent(t *testing.T, authService *services.AuthService, email string) string {
	t.Helper()
	result, err := authService.Signup(context.Background(), &services.SignupInput{
		Email:    email,
		Password: "secret123",
		Name:     "Student",
		Role:     "student",
	})
	require.NoError(t, err)
	return result.AccessToken
}

func TestProtectedRequiresToken(t *testing.T) {
	app, _, _ := testApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedBearerToken(t *testing.T) {
	app, authService, _ := testApp(t)
	token := signupStudent(t, authService, "bearer@school.edu")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedCookieToken(t *testing.T) {
	app, authService, _ := testApp(t)
	token := signupStudent(t, authService, "cookie@school.edu")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSuperAdminGate(t *testing.T) {
	app, authService, _ := testApp(t)
	token := signupStudent(t, authService, "notadmin@school.edu")

	// A student hitting a super admin route is Forbidden, not
	// Unauthorized: the session is valid, the role is not
	req := httptest.NewRequest("GET", "/super", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSuperAdminGateAllowsSuperAdmin(t *testing.T) {
	app, authService, store := testApp(t)

	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	require.NoError(t, store.Users.Create(context.Background(), &models.User{
		ID:           "sa1",
		Email:        "sa@school.edu",
		Name:         "Super",
		PasswordHash: hash,
		Role:         "super_admin",
		IsApproved:   true,
	}))

	login, err := authService.Login(context.Background(), &services.LoginInput{
		Email:    "sa@school.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/super", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
