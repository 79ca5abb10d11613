// Package analyticssvc - service số liệu tương tác bài đăng.
package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	analyticsmodels "post_studio/internal/api/analytics/models"
	basesvc "post_studio/internal/api/base/service"
	"post_studio/internal/common"
	"post_studio/internal/global"
)

// topPostsLimit số bài đăng có engagement cao nhất trả về trong summary
const topPostsLimit = 5

// ComputeEngagementRate tính tỷ lệ tương tác: (likes+comments+shares)/views.
// Views = 0 trả về 0 thay vì chia cho 0.
func ComputeEngagementRate(likes, comments, shares, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(likes+comments+shares) / float64(views)
}

// PostAnalyticsService là service đọc số liệu tương tác
type PostAnalyticsService struct {
	*basesvc.BaseServiceMongoImpl[analyticsmodels.PostAnalytics]
}

// NewPostAnalyticsService tạo mới PostAnalyticsService
func NewPostAnalyticsService() (*PostAnalyticsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PostAnalytics)
	if !exist {
		return nil, fmt.Errorf("failed to get post_analytics collection: %v", common.ErrNotFound)
	}
	return &PostAnalyticsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[analyticsmodels.PostAnalytics](collection),
	}, nil
}

// Summary tổng hợp số liệu tương tác của một owner bằng aggregation pipeline.
// from/to nil thì bỏ qua cận thời gian tương ứng.
func (s *PostAnalyticsService) Summary(ctx context.Context, ownerID primitive.ObjectID, from, to *int64) (*analyticsmodels.AnalyticsSummary, error) {
	match := bson.M{"ownerId": ownerID}
	dateRange := bson.M{}
	if from != nil {
		dateRange["$gte"] = *from
	}
	if to != nil {
		dateRange["$lte"] = *to
	}
	if len(dateRange) > 0 {
		match["date"] = dateRange
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":               nil,
			"postsPublished":    bson.M{"$addToSet": "$postId"},
			"totalLikes":        bson.M{"$sum": "$likes"},
			"totalComments":     bson.M{"$sum": "$comments"},
			"totalShares":       bson.M{"$sum": "$shares"},
			"totalViews":        bson.M{"$sum": "$views"},
			"avgEngagementRate": bson.M{"$avg": "$engagementRate"},
		}},
		{"$project": bson.M{
			"_id":               0,
			"postsPublished":    bson.M{"$size": "$postsPublished"},
			"totalLikes":        1,
			"totalComments":     1,
			"totalShares":       1,
			"totalViews":        1,
			"avgEngagementRate": 1,
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summary := &analyticsmodels.AnalyticsSummary{TopPosts: []analyticsmodels.PostAnalytics{}}
	if cursor.Next(ctx) {
		if err := cursor.Decode(summary); err != nil {
			return nil, common.ConvertMongoError(err)
		}
	}
	summary.OverallEngagementRate = ComputeEngagementRate(
		summary.TotalLikes, summary.TotalComments, summary.TotalShares, summary.TotalViews)

	topFilter := bson.M{"ownerId": ownerID}
	if len(dateRange) > 0 {
		topFilter["date"] = dateRange
	}
	topOpts := options.Find().
		SetSort(bson.D{{Key: "engagementRate", Value: -1}}).
		SetLimit(topPostsLimit)
	topPosts, err := s.Find(ctx, topFilter, topOpts)
	if err != nil {
		return nil, err
	}
	if topPosts != nil {
		summary.TopPosts = topPosts
	}

	return summary, nil
}
