package middleware

import (
	"errors"
	"strings"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/domain"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/core/services"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// tokenFromRequest extracts the access token from cookie or
// Authorization header, cookie first.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// Protected creates authentication middleware. The token is resolved
// to the live user record on every request, so a revoked approval
// locks the account out even with a still-valid token.
func Protected(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := tokenFromRequest(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		user, err := authService.VerifySession(c.Context(), accessToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				return response.Unauthorized(c, "Access token expired")
			case errors.Is(err, services.ErrPendingApproval):
				return response.Forbidden(c, "Account is pending approval")
			default:
				return response.Unauthorized(c, "Invalid access token")
			}
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)
		c.Locals("role", user.Role)

		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protected
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// RequireRole creates role-based authorization middleware
func RequireRole(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if role == string(allowed) {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// SuperAdminOnly allows only the super_admin role
func SuperAdminOnly() fiber.Handler {
	return RequireRole(domain.RoleSuperAdmin)
}

// AdminOrSuperAdmin allows admin and super_admin roles
func AdminOrSuperAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
}

// OptionalAuth doesn't require auth but resolves the user if a valid
// token is present
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := tokenFromRequest(c); accessToken != "" {
			if user, err := authService.VerifySession(c.Context(), accessToken); err == nil {
				c.Locals("user", user)
				c.Locals("userID", user.ID)
				c.Locals("role", user.Role)
			}
		}
		return c.Next()
	}
}
