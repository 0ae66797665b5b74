package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func roleApp(m *AuthMiddleware, role string, handlerRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", role)
			return c.Next()
		},
		m.RequireRole(handlerRoles...),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	m := &AuthMiddleware{}
	app := roleApp(m, "super_admin", "admin", "super_admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	m := &AuthMiddleware{}
	app := roleApp(m, "user", "admin", "super_admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
}

func TestRequireRoleRejectsMissingIdentity(t *testing.T) {
	m := &AuthMiddleware{}
	app := fiber.New()
	app.Get("/guarded",
		m.RequireRole("admin"),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	m := &AuthMiddleware{}
	app := fiber.New()
	app.Get("/admin",
		m.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}
