// Package postsvc - service bài đăng và các hàm thuần về vòng đời/validate.
package postsvc

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "post_studio/internal/api/base/service"
	postdto "post_studio/internal/api/post/dto"
	postmodels "post_studio/internal/api/post/models"
	"post_studio/internal/common"
	"post_studio/internal/global"
	"post_studio/internal/utility"
)

// Giới hạn nội dung và media của bài đăng
const (
	MaxContentLength = 2200            // Số ký tự tối đa của content
	MaxImageSize     = 5 * 1024 * 1024 // 5 MiB
)

// allowedImageTypes các MIME type ảnh được chấp nhận
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// StagedMedia mô tả một file media đã staged (từ upload hoặc suy ra từ URL).
// Size = 0 nghĩa là chưa biết kích thước (ví dụ chỉ có URL).
type StagedMedia struct {
	ContentType string
	Size        int64
}

// DraftInput là đầu vào cho ValidateDraft, đã merge từ create/update input.
type DraftInput struct {
	Content      string
	ScheduledFor *int64
	Media        []StagedMedia
	Platform     string
}

// DeriveStatus derive trạng thái bài đăng từ lịch đăng. Hàm thuần:
// now được truyền vào tường minh, không bao giờ đọc đồng hồ bên trong.
// nil → draft; tương lai → scheduled; quá khứ hoặc bằng now → lỗi.
func DeriveStatus(scheduledFor *int64, now int64) (string, error) {
	if scheduledFor == nil {
		return postmodels.PostStatusDraft, nil
	}
	if *scheduledFor <= now {
		return "", common.ErrPostScheduleInPast
	}
	return postmodels.PostStatusScheduled, nil
}

// ValidateImage kiểm tra MIME type và kích thước của một file ảnh.
// Dùng chung cho validate bài đăng và upload media.
func ValidateImage(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return common.ErrPostImageType
	}
	if size > MaxImageSize {
		return common.ErrPostImageSize
	}
	return nil
}

// ContentTypeFromURL suy ra MIME type từ phần mở rộng của URL media.
func ContentTypeFromURL(url string) string {
	ext := strings.ToLower(path.Ext(url))
	if i := strings.IndexAny(ext, "?#"); i >= 0 {
		ext = ext[:i]
	}
	return mime.TypeByExtension(ext)
}

// ValidateDraft kiểm tra bài đăng theo thứ tự cố định, lỗi đầu tiên thắng:
// content rỗng → quá dài → lịch ở quá khứ → loại ảnh → kích thước ảnh → nền tảng.
func ValidateDraft(in DraftInput, now int64) error {
	if strings.TrimSpace(in.Content) == "" {
		return common.ErrPostEmptyContent
	}
	if len([]rune(in.Content)) > MaxContentLength {
		return common.ErrPostContentTooLong
	}
	if in.ScheduledFor != nil && *in.ScheduledFor <= now {
		return common.ErrPostScheduleInPast
	}
	for _, media := range in.Media {
		if err := ValidateImage(media.ContentType, media.Size); err != nil {
			return err
		}
	}
	if !utility.Contains(global.SupportedPlatforms, in.Platform) {
		return common.ErrPostPlatform
	}
	return nil
}

// StagedMediaFromUrls suy ra metadata media từ danh sách URL (size chưa biết).
func StagedMediaFromUrls(urls []string) []StagedMedia {
	media := make([]StagedMedia, 0, len(urls))
	for _, url := range urls {
		media = append(media, StagedMedia{ContentType: ContentTypeFromURL(url)})
	}
	return media
}

// BuildPost validate input tạo bài và dựng Post mới với status derive từ lịch.
// Client không bao giờ ghi status: input không có field status, status luôn
// được derive ở đây.
func BuildPost(ownerID primitive.ObjectID, in postdto.PostCreateInput, now int64) (postmodels.Post, error) {
	draft := DraftInput{
		Content:      in.Content,
		ScheduledFor: in.ScheduledFor,
		Media:        StagedMediaFromUrls(in.MediaUrls),
		Platform:     in.Platform,
	}
	if err := ValidateDraft(draft, now); err != nil {
		return postmodels.Post{}, err
	}
	status, err := DeriveStatus(in.ScheduledFor, now)
	if err != nil {
		return postmodels.Post{}, err
	}
	return postmodels.Post{
		OwnerID:      ownerID,
		Content:      in.Content,
		MediaUrls:    in.MediaUrls,
		ScheduledFor: in.ScheduledFor,
		Platform:     in.Platform,
		Status:       status,
	}, nil
}

// ApplyUpdate merge input cập nhật vào bài hiện có, validate lại toàn bộ và
// derive lại status. ClearSchedule gỡ lịch và đưa bài về draft ($unset
// scheduledFor). Trả về bài sau merge và UpdateData để ghi xuống Mongo.
func ApplyUpdate(existing postmodels.Post, in postdto.PostUpdateInput, now int64) (postmodels.Post, *basesvc.UpdateData, error) {
	merged := existing
	if in.Content != nil {
		merged.Content = *in.Content
	}
	if in.MediaUrls != nil {
		merged.MediaUrls = in.MediaUrls
	}
	if in.Platform != nil {
		merged.Platform = *in.Platform
	}
	if in.ClearSchedule {
		merged.ScheduledFor = nil
	} else if in.ScheduledFor != nil {
		merged.ScheduledFor = in.ScheduledFor
	}

	draft := DraftInput{
		Content:      merged.Content,
		ScheduledFor: merged.ScheduledFor,
		Media:        StagedMediaFromUrls(merged.MediaUrls),
		Platform:     merged.Platform,
	}
	if err := ValidateDraft(draft, now); err != nil {
		return postmodels.Post{}, nil, err
	}
	status, err := DeriveStatus(merged.ScheduledFor, now)
	if err != nil {
		return postmodels.Post{}, nil, err
	}
	merged.Status = status

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content":   merged.Content,
			"mediaUrls": merged.MediaUrls,
			"platform":  merged.Platform,
			"status":    merged.Status,
		},
	}
	if merged.ScheduledFor != nil {
		updateData.Set["scheduledFor"] = *merged.ScheduledFor
	} else {
		updateData.Unset = map[string]interface{}{"scheduledFor": 1}
	}
	return merged, updateData, nil
}

// BuildListFilter xây filter danh sách bài đăng. Owner scope LUÔN có mặt.
// statusFilter: "" hoặc "all" không thêm gì; một trạng thái hợp lệ thêm điều
// kiện status; giá trị khác bị từ chối.
func BuildListFilter(ownerID primitive.ObjectID, statusFilter string) (bson.M, error) {
	filter := bson.M{"ownerId": ownerID}
	switch statusFilter {
	case "", "all":
	case postmodels.PostStatusDraft, postmodels.PostStatusScheduled, postmodels.PostStatusPublished, postmodels.PostStatusFailed:
		filter["status"] = statusFilter
	default:
		return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái lọc không hợp lệ: "+statusFilter, common.StatusBadRequest, nil)
	}
	return filter, nil
}

// PostService là service quản lý bài đăng
type PostService struct {
	*basesvc.BaseServiceMongoImpl[postmodels.Post]
}

// NewPostService tạo mới PostService
func NewPostService() (*PostService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Posts)
	if !exist {
		return nil, fmt.Errorf("failed to get posts collection: %v", common.ErrNotFound)
	}
	return &PostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[postmodels.Post](collection),
	}, nil
}

// Calendar lấy các bài đã lên lịch của owner trong khoảng [from, to],
// sắp theo scheduledFor tăng dần. from/to nil thì bỏ qua cận tương ứng.
func (s *PostService) Calendar(ctx context.Context, ownerID primitive.ObjectID, from, to *int64) ([]postmodels.Post, error) {
	schedule := bson.M{}
	if from != nil {
		schedule["$gte"] = *from
	}
	if to != nil {
		schedule["$lte"] = *to
	}
	filter := bson.M{
		"ownerId": ownerID,
		"status":  postmodels.PostStatusScheduled,
	}
	if len(schedule) > 0 {
		filter["scheduledFor"] = schedule
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduledFor", Value: 1}})
	return s.Find(ctx, filter, opts)
}
