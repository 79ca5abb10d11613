// Package router đăng ký các route thuộc domain Media.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "post_studio/internal/api/media/handler"
	"post_studio/internal/api/middleware"
	apirouter "post_studio/internal/api/router"
)

// Register đăng ký route upload media lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaHandler, err := mediahdl.NewMediaHandler()
	if err != nil {
		return fmt.Errorf("create media handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/upload", []fiber.Handler{authMiddleware}, mediaHandler.HandleUpload)
	return nil
}
