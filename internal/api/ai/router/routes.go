// Package router đăng ký các route thuộc domain AI.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "post_studio/internal/api/ai/handler"
	"post_studio/internal/api/middleware"
	apirouter "post_studio/internal/api/router"
)

// Register đăng ký các route sinh caption/ảnh và lịch sử generation lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	aiHandler, err := aihdl.NewAiGenerationHandler()
	if err != nil {
		return fmt.Errorf("create ai generation handler: %w", err)
	}

	// Lịch sử generation chỉ đọc
	r.RegisterCRUDRoutes(v1, "/ai/generations", aiHandler, apirouter.ReadOnlyConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-caption", []fiber.Handler{authMiddleware}, aiHandler.HandleGenerateCaption)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-image", []fiber.Handler{authMiddleware}, aiHandler.HandleGenerateImage)
	return nil
}
