package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "post_studio/internal/api/base/models"
)

// PostAnalytics lưu số liệu tương tác của một bài đăng theo ngày.
// Dữ liệu do pipeline bên ngoài ghi vào, client chỉ đọc.
type PostAnalytics struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID         primitive.ObjectID `json:"postId" bson:"postId" index:"single:1"`
	OwnerID        primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	Platform       string             `json:"platform" bson:"platform" index:"single:1"`
	Likes          int64              `json:"likes" bson:"likes"`
	Comments       int64              `json:"comments" bson:"comments"`
	Shares         int64              `json:"shares" bson:"shares"`
	Views          int64              `json:"views" bson:"views"`
	Reach          int64              `json:"reach" bson:"reach"`
	EngagementRate float64            `json:"engagementRate" bson:"engagementRate"`
	Date           int64              `json:"date" bson:"date" index:"single:-1"` // UnixMilli đầu ngày
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// PostAnalyticsPaginateResult đại diện cho kết quả phân trang PostAnalytics
type PostAnalyticsPaginateResult = basemodels.PaginateResult[PostAnalytics]

// AnalyticsSummary kết quả tổng hợp số liệu cho dashboard của một owner.
type AnalyticsSummary struct {
	PostsPublished    int64           `json:"postsPublished" bson:"postsPublished"`
	TotalLikes        int64           `json:"totalLikes" bson:"totalLikes"`
	TotalComments     int64           `json:"totalComments" bson:"totalComments"`
	TotalShares       int64           `json:"totalShares" bson:"totalShares"`
	TotalViews        int64           `json:"totalViews" bson:"totalViews"`
	AvgEngagementRate float64         `json:"avgEngagementRate" bson:"avgEngagementRate"`
	// OverallEngagementRate tính từ các total ở tầng service, không lưu Mongo
	OverallEngagementRate float64         `json:"overallEngagementRate" bson:"-"`
	TopPosts              []PostAnalytics `json:"topPosts" bson:"topPosts"`
}
