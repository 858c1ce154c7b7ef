package middleware

import (
	"os"
	"strings"

	"freightdesk/constants"
	"freightdesk/types"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie the session token falls back to when no
// Authorization header is present.
const SessionCookieName = "session"

// RequireRoles creates a guard that only passes sessions holding one of the
// given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid session without a role check.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// IsAuthenticated verifies the session token and checks the session role
// against the allowed set. Claims are attached to c.Locals("user").
func IsAuthenticated(allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Please log in to continue",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := utils.ParseSessionToken(os.Getenv("SESSION_SECRET"), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !roleAllowed(claims.Role, allowedRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "You do not have permission to access this page",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// SessionClaims returns the claims the guard stored for this request.
func SessionClaims(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	claims, ok := c.Locals("user").(*utils.SessionClaims)
	return claims, ok
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}
	// Fall back to the session cookie for browser clients.
	return c.Cookies(SessionCookieName)
}

func roleAllowed(role string, allowedRoles []string) bool {
	for _, allowed := range allowedRoles {
		if allowed == constants.RoleAny || allowed == role {
			return true
		}
	}
	return false
}
