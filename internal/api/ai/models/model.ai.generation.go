package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "post_studio/internal/api/base/models"
)

// AiGenerationKind định nghĩa loại generation
const (
	AiGenerationKindCaption = "caption" // Sinh caption bằng LLM
	AiGenerationKindImage   = "image"   // Sinh ảnh
)

// AiGenerationStatus định nghĩa trạng thái của một lần generation.
// Dùng enum ba trạng thái thay vì cờ boolean.
const (
	AiGenerationStatusPending   = "pending"
	AiGenerationStatusSucceeded = "succeeded"
	AiGenerationStatusFailed    = "failed"
)

// AiGeneration lưu lịch sử các lần sinh caption/ảnh của một owner.
// Client chỉ đọc; service ghi khi xử lý request generation.
type AiGeneration struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	Kind      string             `json:"kind" bson:"kind" index:"single:1"`
	Prompt    string             `json:"prompt" bson:"prompt"`
	Status    string             `json:"status" bson:"status" index:"single:1" default:"pending"`
	Result    string             `json:"result,omitempty" bson:"result,omitempty"`     // Caption hoặc URL ảnh
	ErrorMsg  string             `json:"errorMsg,omitempty" bson:"errorMsg,omitempty"` // Lý do fail
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// AiGenerationPaginateResult đại diện cho kết quả phân trang AiGeneration
type AiGenerationPaginateResult = basemodels.PaginateResult[AiGeneration]
