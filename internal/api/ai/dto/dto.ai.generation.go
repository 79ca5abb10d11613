package aidto

// GenerateCaptionInput đầu vào sinh caption.
type GenerateCaptionInput struct {
	Topic string `json:"topic" validate:"required,no_xss"`
	Tone  string `json:"tone" validate:"omitempty,no_xss"`
}

// GenerateImageInput đầu vào sinh ảnh.
type GenerateImageInput struct {
	Prompt string `json:"prompt" validate:"required,no_xss"`
}

// AiGenerationCreateInput đầu vào tạo bản ghi generation (nội bộ, route client read-only).
type AiGenerationCreateInput struct {
	Kind   string `json:"kind" validate:"required"`
	Prompt string `json:"prompt" validate:"required"`
}

// AiGenerationUpdateInput đầu vào cập nhật bản ghi generation.
type AiGenerationUpdateInput struct {
	Status   string `json:"status"`
	Result   string `json:"result"`
	ErrorMsg string `json:"errorMsg"`
}
