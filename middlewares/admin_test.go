package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func adminApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AdminAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAdminAuth(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "secret-token")
	app := adminApp()

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"valid token", "secret-token", fiber.StatusOK},
		{"wrong token", "wrong", fiber.StatusUnauthorized},
		{"missing token", "", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.token != "" {
				req.Header.Set("X-Admin-Token", tc.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestAdminAuthUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "")
	app := adminApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-Admin-Token", "anything")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no token is configured", resp.StatusCode)
	}
}
