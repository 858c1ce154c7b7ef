package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freightdesk/constants"
	"freightdesk/utils"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "middleware-test-secret"

func newGuardedApp(t *testing.T, roles ...string) *fiber.App {
	t.Helper()
	t.Setenv("SESSION_SECRET", testSecret)

	app := fiber.New()
	app.Get("/guarded", IsAuthenticated(roles), func(c *fiber.Ctx) error {
		claims, _ := SessionClaims(c)
		return c.SendString(claims.Email)
	})
	return app
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(testSecret, 7, "asha@example.com", role, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	return token
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAny)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGarbageTokenIsUnauthorized(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAny)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestWrongRoleIsForbidden(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, constants.RoleViewer))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestAllowedRolePasses(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAdmin, constants.RoleSales)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, constants.RoleSales))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSessionCookieFallback(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAny)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueToken(t, constants.RoleViewer)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestExpiredTokenIsUnauthorized(t *testing.T) {
	app := newGuardedApp(t, constants.RoleAny)

	token, err := utils.GenerateSessionToken(testSecret, 7, "asha@example.com", constants.RoleViewer, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
