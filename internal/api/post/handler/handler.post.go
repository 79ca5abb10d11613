package posthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basehdl "post_studio/internal/api/base/handler"
	postdto "post_studio/internal/api/post/dto"
	postmodels "post_studio/internal/api/post/models"
	postsvc "post_studio/internal/api/post/service"
	"post_studio/internal/logger"
	"post_studio/internal/utility"
)

// PostHandler xử lý các request liên quan đến bài đăng
type PostHandler struct {
	*basehdl.BaseHandler[postmodels.Post, postdto.PostCreateInput, postdto.PostUpdateInput]
	PostService *postsvc.PostService
}

// NewPostHandler tạo mới PostHandler
func NewPostHandler() (*PostHandler, error) {
	postService, err := postsvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	hdl := &PostHandler{
		PostService: postService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[postmodels.Post, postdto.PostCreateInput, postdto.PostUpdateInput](postService.BaseServiceMongoImpl)
	return hdl, nil
}

// InsertOne tạo bài đăng mới. Override base handler để chạy validate theo
// thứ tự cố định và derive status từ scheduledFor (client không ghi status).
func (h *PostHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input postdto.PostCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := postsvc.BuildPost(h.GetUserID(c), input, utility.CurrentTimeInMilli())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		created, err := h.PostService.InsertOne(c.Context(), post)
		if err == nil {
			logger.LogCRUD("insert", "post", utility.ObjectID2String(created.ID), c, map[string]interface{}{"status": created.Status})
		}
		h.HandleResponse(c, created, err)
		return nil
	})
}

// UpdateById cập nhật bài đăng theo id. Override base handler: merge với bài
// hiện có, validate lại toàn bộ, derive lại status. ClearSchedule gỡ lịch và
// đưa bài về draft.
func (h *PostHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		var input postdto.PostUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Filter theo cả _id và ownerId: bài của user khác trả về NotFound
		filter := bson.M{"_id": utility.String2ObjectID(id), "ownerId": h.GetUserID(c)}
		existing, err := h.PostService.FindOne(c.Context(), filter, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		merged, updateData, err := postsvc.ApplyUpdate(existing, input, utility.CurrentTimeInMilli())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.PostService.UpdateOne(c.Context(), filter, updateData, nil)
		if err == nil {
			logger.LogCRUD("update", "post", id, c, map[string]interface{}{"status": merged.Status})
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleList trả về danh sách bài đăng của owner theo trạng thái
// (?status=all|draft|scheduled|published|failed), sắp theo createdAt giảm dần.
func (h *PostHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := postsvc.BuildListFilter(h.GetUserID(c), c.Query("status"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)
		opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		result, err := h.PostService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCalendar trả về các bài đã lên lịch của owner, sắp theo scheduledFor
// tăng dần, phục vụ view lịch đăng trên dashboard.
func (h *PostHandler) HandleCalendar(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params postdto.PostCalendarParams
		if err := c.Bind().Query(&params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		posts, err := h.PostService.Calendar(c.Context(), h.GetUserID(c), params.From, params.To)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if posts == nil {
			posts = []postmodels.Post{}
		}
		h.HandleResponse(c, posts, nil)
		return nil
	})
}
