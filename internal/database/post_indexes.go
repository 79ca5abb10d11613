// Package database - Index ghép cho posts/analytics không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"post_studio/internal/global"
	entity "post_studio/internal/metadata/entity/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// compoundIndexes khai báo các index ghép theo collection bằng metadata descriptor.
// Key là field của MongoDB_ColNames (resolve khi chạy vì tên collection set ở init).
func compoundIndexes() map[string][]entity.MetadataIndex {
	return map[string][]entity.MetadataIndex{
		// list view có filter theo status
		global.MongoDB_ColNames.Posts: {
			{
				Name:        "post_owner_status_created",
				Description: "Danh sách bài đăng của owner theo trạng thái, mới nhất trước",
				Fields: []entity.MetadataIndexField{
					{Name: "ownerId", Order: "asc"},
					{Name: "status", Order: "asc"},
					{Name: "createdAt", Order: "desc"},
				},
			},
			{
				Name:        "post_owner_scheduled",
				Description: "Calendar view các bài đã lên lịch của owner",
				Fields: []entity.MetadataIndexField{
					{Name: "ownerId", Order: "asc"},
					{Name: "scheduledFor", Order: "asc"},
				},
				Options: entity.MetadataIndexOptions{Sparse: true},
			},
		},
		global.MongoDB_ColNames.PostAnalytics: {
			{
				Name:        "post_analytics_owner_post",
				Description: "Join số liệu tương tác theo bài đăng",
				Fields: []entity.MetadataIndexField{
					{Name: "ownerId", Order: "asc"},
					{Name: "postId", Order: "asc"},
				},
			},
		},
		global.MongoDB_ColNames.AiGenerations: {
			{
				Name:        "ai_generation_owner_created",
				Description: "Lịch sử sinh nội dung AI của owner, mới nhất trước",
				Fields: []entity.MetadataIndexField{
					{Name: "ownerId", Order: "asc"},
					{Name: "createdAt", Order: "desc"},
				},
			},
		},
	}
}

// buildIndexModel chuyển một metadata descriptor thành mongo.IndexModel.
func buildIndexModel(idx entity.MetadataIndex) mongo.IndexModel {
	keys := bson.D{}
	for _, field := range idx.Fields {
		order := 1
		if field.Order == "desc" || field.Order == "-1" {
			order = -1
		}
		keys = append(keys, bson.E{Key: field.Name, Value: order})
	}
	opts := options.Index().SetName(idx.Name)
	if idx.Options.Unique {
		opts = opts.SetUnique(true)
	}
	if idx.Options.Sparse {
		opts = opts.SetSparse(true)
	}
	return mongo.IndexModel{Keys: keys, Options: opts}
}

// CreatePostAdditionalIndexes tạo các index ghép cho posts, post_analytics và
// ai_generations. Gọi sau CreateIndexes cho từng collection.
func CreatePostAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	for colName, indexes := range compoundIndexes() {
		coll := db.Collection(colName)
		for _, idx := range indexes {
			if _, err := coll.Indexes().CreateOne(ctx, buildIndexModel(idx)); err != nil && !isIndexExistsError(err) {
				return err
			}
		}
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
