// Package router đăng ký các route thuộc domain Analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "post_studio/internal/api/analytics/handler"
	"post_studio/internal/api/middleware"
	apirouter "post_studio/internal/api/router"
)

// Register đăng ký các route số liệu tương tác lên v1. Client chỉ đọc:
// dữ liệu analytics do pipeline bên ngoài ghi.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewPostAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create post analytics handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/analytics", analyticsHandler, apirouter.ReadOnlyConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/summary", []fiber.Handler{authMiddleware}, analyticsHandler.HandleSummary)
	return nil
}
