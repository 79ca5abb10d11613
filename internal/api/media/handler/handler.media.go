package mediahdl

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "post_studio/internal/api/base/handler"
	postsvc "post_studio/internal/api/post/service"
	"post_studio/internal/common"
	"post_studio/internal/global"
	"post_studio/internal/storage"
)

// MediaHandler xử lý upload media cho bài đăng
type MediaHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	Storage *storage.Client
}

// NewMediaHandler tạo mới MediaHandler
func NewMediaHandler() (*MediaHandler, error) {
	cfg := global.MongoDB_ServerConfig
	return &MediaHandler{
		BaseHandler: &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		Storage:     storage.NewClient(cfg.StorageEndpoint, cfg.StorageAPIKey, cfg.StorageBucket, cfg.StoragePublicURL),
	}, nil
}

// HandleUpload nhận ảnh multipart, validate theo cùng allow-list và trần
// kích thước với bài đăng rồi đẩy lên storage. Trả về {path, publicUrl}.
func (h *MediaHandler) HandleUpload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload (field 'file')", common.StatusBadRequest, err))
			return nil
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if err := postsvc.ValidateImage(contentType, fileHeader.Size); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err))
			return nil
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err))
			return nil
		}

		// Object path theo owner để media các user không đè lên nhau
		objectPath := fmt.Sprintf("%s/%d%s", h.GetUserID(c).Hex(), time.Now().UnixNano(), path.Ext(fileHeader.Filename))
		publicURL, err := h.Storage.Upload(c.Context(), objectPath, contentType, data)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"path":      objectPath,
			"publicUrl": publicURL,
		}, nil)
		return nil
	})
}
