package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "post_studio/internal/api/base/models"
	"post_studio/internal/global"
)

// Các trạng thái vòng đời của bài đăng, định nghĩa tập trung ở global
const (
	PostStatusDraft     = global.PostStatusDraft     // Bản nháp, chưa có lịch đăng
	PostStatusScheduled = global.PostStatusScheduled // Đã lên lịch đăng ở tương lai
	PostStatusPublished = global.PostStatusPublished // Đã đăng thành công (do publisher bên ngoài set)
	PostStatusFailed    = global.PostStatusFailed    // Đăng thất bại (do publisher bên ngoài set)
)

// Post đại diện cho một bài đăng trên dashboard.
// Status luôn được derive ở server, client không bao giờ ghi trực tiếp.
// Số liệu tương tác KHÔNG nằm trên document này mà join read-only qua post_analytics.
type Post struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID      primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"` // Người sở hữu (từ session, bất biến)
	Content      string             `json:"content" bson:"content" index:"text"`
	MediaUrls    []string           `json:"mediaUrls,omitempty" bson:"mediaUrls,omitempty"`
	ScheduledFor *int64             `json:"scheduledFor,omitempty" bson:"scheduledFor,omitempty" index:"single:1"` // UnixMilli, nil nếu là draft
	Platform     string             `json:"platform" bson:"platform" index:"single:1"`
	Status       string             `json:"status" bson:"status" index:"single:1"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// PostPaginateResult đại diện cho kết quả phân trang Post
type PostPaginateResult = basemodels.PaginateResult[Post]
