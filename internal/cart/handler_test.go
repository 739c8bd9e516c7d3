package cart

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestCartRoutes_Basic(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, seedCatalog())
	handler := NewHandler(service)
	app := makeAppWithCartHandler(handler)

	// unauthorized access should be blocked
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add a product
	req2 := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":2,"quantity":2}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res2.StatusCode)
	}

	// same selection again merges, not a second line
	req3 := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":2,"quantity":1}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for second add, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"quantity":3`) {
		t.Fatalf("expected merged quantity 3, got %s", string(b3))
	}

	// distinct variant produces a distinct line
	req4 := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":1,"quantity":1,"variant":"Red"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for variant add, got %d", res4.StatusCode)
	}

	req5 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req5.Header.Set("X-User-ID", "42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if !strings.Contains(string(b5), "subtotal") {
		t.Fatalf("response missing subtotal: %s", string(b5))
	}

	// unknown variant label is a 400
	req6 := httptest.NewRequest("POST", "/api/v1/cart", strings.NewReader(`{"productId":1,"quantity":1,"variant":"Green"}`))
	req6.Header.Set("Content-Type", "application/json")
	req6.Header.Set("X-User-ID", "42")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown variant, got %d", res6.StatusCode)
	}

	// clear the cart
	req7 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req7.Header.Set("X-User-ID", "42")
	res7, _ := app.Test(req7)
	if res7.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res7.StatusCode)
	}
	lines, _ := repo.ListByUser(42)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(lines))
	}
}
