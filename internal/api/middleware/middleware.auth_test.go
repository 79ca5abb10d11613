package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"post_studio/internal/common"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	group := app.Group("/posts")
	group.Use(AuthMiddleware())
	group.Get("/find", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

// Hai nhánh từ chối sớm (thiếu header, sai định dạng Bearer) phải trả về
// response lỗi 401 hoàn chỉnh, không chạm database.
func TestAuthMiddleware_ThieuHeaderTraVe401(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/posts/find", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("thiếu Authorization header: status = %d, muốn %d", resp.StatusCode, common.StatusUnauthorized)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body lỗi: %v", err)
	}
	if body["status"] != "error" {
		t.Errorf("body status = %v, muốn error", body["status"])
	}
}

func TestAuthMiddleware_BearerSaiDinhDangTraVe401(t *testing.T) {
	app := newAuthTestApp()

	cases := []string{
		"Basic abc123",
		"Bearer",
		"Bearer ",
		"token-khong-co-scheme",
	}
	for _, header := range cases {
		req := httptest.NewRequest("GET", "/posts/find", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test(%q) trả về lỗi: %v", header, err)
		}
		resp.Body.Close()

		if resp.StatusCode != common.StatusUnauthorized {
			t.Errorf("Authorization %q: status = %d, muốn %d", header, resp.StatusCode, common.StatusUnauthorized)
		}
	}
}
