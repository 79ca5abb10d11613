package aisvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	aimodels "post_studio/internal/api/ai/models"
	basesvc "post_studio/internal/api/base/service"
	"post_studio/internal/common"
	"post_studio/internal/global"
	"post_studio/internal/storage"
)

// AiGenerationService quản lý lịch sử generation và điều phối các provider.
type AiGenerationService struct {
	*basesvc.BaseServiceMongoImpl[aimodels.AiGeneration]
	captionClient *CaptionClient
	imageClient   *ImageClient
	storageClient *storage.Client
}

// NewAiGenerationService tạo mới AiGenerationService từ config toàn cục.
func NewAiGenerationService() (*AiGenerationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AiGenerations)
	if !exist {
		return nil, fmt.Errorf("failed to get ai_generations collection: %v", common.ErrNotFound)
	}
	cfg := global.MongoDB_ServerConfig
	return &AiGenerationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[aimodels.AiGeneration](collection),
		captionClient:        NewCaptionClient(cfg.CaptionAPIEndpoint, cfg.CaptionAPIKey, cfg.CaptionModel),
		imageClient:          NewImageClient(cfg.ImageAPIEndpoint, cfg.ImageAPIKey, cfg.ImageModel),
		storageClient:        storage.NewClient(cfg.StorageEndpoint, cfg.StorageAPIKey, cfg.StorageBucket, cfg.StoragePublicURL),
	}, nil
}

// record ghi một bản ghi generation mới ở trạng thái pending.
func (s *AiGenerationService) record(ctx context.Context, ownerID primitive.ObjectID, kind, prompt string) (aimodels.AiGeneration, error) {
	return s.InsertOne(ctx, aimodels.AiGeneration{
		OwnerID: ownerID,
		Kind:    kind,
		Prompt:  prompt,
		Status:  aimodels.AiGenerationStatusPending,
	})
}

// finish cập nhật kết quả của một bản ghi generation.
func (s *AiGenerationService) finish(ctx context.Context, id primitive.ObjectID, result string, genErr error) {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{}}
	if genErr != nil {
		updateData.Set["status"] = aimodels.AiGenerationStatusFailed
		updateData.Set["errorMsg"] = genErr.Error()
	} else {
		updateData.Set["status"] = aimodels.AiGenerationStatusSucceeded
		updateData.Set["result"] = result
	}
	// Lỗi ghi lịch sử không được che kết quả generation của caller
	_, _ = s.UpdateById(ctx, id, updateData)
}

// GenerateCaption sinh caption cho chủ đề và ghi lại lịch sử generation.
func (s *AiGenerationService) GenerateCaption(ctx context.Context, ownerID primitive.ObjectID, topic, tone string) (string, error) {
	prompt := topic
	if tone != "" {
		prompt = topic + " (tone: " + tone + ")"
	}
	rec, err := s.record(ctx, ownerID, aimodels.AiGenerationKindCaption, prompt)
	if err != nil {
		return "", err
	}

	caption, genErr := s.captionClient.GenerateCaption(ctx, topic, tone)
	s.finish(ctx, rec.ID, caption, genErr)
	if genErr != nil {
		return "", genErr
	}
	return caption, nil
}

// GenerateImage sinh ảnh từ prompt, upload lên storage và trả về public URL.
func (s *AiGenerationService) GenerateImage(ctx context.Context, ownerID primitive.ObjectID, prompt string) (string, error) {
	rec, err := s.record(ctx, ownerID, aimodels.AiGenerationKindImage, prompt)
	if err != nil {
		return "", err
	}

	imageBytes, genErr := s.imageClient.GenerateImage(ctx, prompt)
	if genErr != nil {
		s.finish(ctx, rec.ID, "", genErr)
		return "", genErr
	}

	objectPath := fmt.Sprintf("%s/ai/%d.png", ownerID.Hex(), time.Now().UnixNano())
	imageURL, upErr := s.storageClient.Upload(ctx, objectPath, "image/png", imageBytes)
	s.finish(ctx, rec.ID, imageURL, upErr)
	if upErr != nil {
		return "", upErr
	}
	return imageURL, nil
}
