// Package router đăng ký các route thuộc domain Post.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"post_studio/internal/api/middleware"
	posthdl "post_studio/internal/api/post/handler"
	apirouter "post_studio/internal/api/router"
)

// Register đăng ký tất cả route bài đăng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	postHandler, err := posthdl.NewPostHandler()
	if err != nil {
		return fmt.Errorf("create post handler: %w", err)
	}
	// Chỉ insert-one và update-by-id được mở: hai handler này override validate
	// và derive status; các đường ghi generic sẽ bỏ qua vòng đời bài đăng.
	r.RegisterCRUDRoutes(v1, "/posts", postHandler, apirouter.LifecycleWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "GET", "/list", []fiber.Handler{authMiddleware}, postHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/posts", "GET", "/calendar", []fiber.Handler{authMiddleware}, postHandler.HandleCalendar)
	return nil
}
