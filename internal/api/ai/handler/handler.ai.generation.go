package aihdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aidto "post_studio/internal/api/ai/dto"
	aimodels "post_studio/internal/api/ai/models"
	aisvc "post_studio/internal/api/ai/service"
	basehdl "post_studio/internal/api/base/handler"
)

// AiGenerationHandler xử lý các request sinh caption/ảnh và đọc lịch sử generation
type AiGenerationHandler struct {
	*basehdl.BaseHandler[aimodels.AiGeneration, aidto.AiGenerationCreateInput, aidto.AiGenerationUpdateInput]
	GenerationService *aisvc.AiGenerationService
}

// NewAiGenerationHandler tạo mới AiGenerationHandler
func NewAiGenerationHandler() (*AiGenerationHandler, error) {
	generationService, err := aisvc.NewAiGenerationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ai generation service: %v", err)
	}
	hdl := &AiGenerationHandler{
		GenerationService: generationService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[aimodels.AiGeneration, aidto.AiGenerationCreateInput, aidto.AiGenerationUpdateInput](generationService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleGenerateCaption sinh caption cho một chủ đề.
func (h *AiGenerationHandler) HandleGenerateCaption(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.GenerateCaptionInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		caption, err := h.GenerationService.GenerateCaption(c.Context(), h.GetUserID(c), input.Topic, input.Tone)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"caption": caption}, nil)
		return nil
	})
}

// HandleGenerateImage sinh ảnh từ prompt và trả về URL ảnh đã upload.
func (h *AiGenerationHandler) HandleGenerateImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.GenerateImageInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		imageURL, err := h.GenerationService.GenerateImage(c.Context(), h.GetUserID(c), input.Prompt)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"imageUrl": imageURL}, nil)
		return nil
	})
}
