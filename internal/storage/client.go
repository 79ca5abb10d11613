// Package storage - client HTTP cho hosted object storage chứa media của bài đăng.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"post_studio/internal/common"
	"post_studio/internal/logger"
	"post_studio/internal/utility"
)

// Client gọi storage API qua HTTP. Mỗi object được PUT lên
// {endpoint}/object/{bucket}/{path} và public URL là
// {publicURL}/object/public/{bucket}/{path}.
type Client struct {
	endpoint  string
	apiKey    string
	bucket    string
	publicURL string
	http      *fasthttp.Client
}

// NewClient tạo storage client. publicURL rỗng thì suy ra từ endpoint.
func NewClient(endpoint, apiKey, bucket, publicURL string) *Client {
	if publicURL == "" {
		publicURL = endpoint
	}
	return &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		apiKey:    apiKey,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		http: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// PublicURL trả về URL public của một object đã upload.
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.publicURL, c.bucket, objectPath)
}

// Upload đẩy một object lên bucket và trả về public URL.
// Không có rollback: nếu bước sau của caller thất bại, object vẫn nằm lại bucket.
// ctx chỉ dùng để tôn trọng cancellation trước khi gọi; fasthttp tự quản timeout.
func (c *Client) Upload(ctx context.Context, objectPath string, contentType string, data []byte) (string, error) {
	log := logger.GetAppLogger()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/object/%s/%s", c.endpoint, c.bucket, objectPath)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPut)
	req.Header.SetContentType(contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.SetBody(data)

	if err := c.http.DoTimeout(req, resp, 10*time.Second); err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"bucket": c.bucket,
			"path":   objectPath,
		}).Error("📦 [STORAGE] Lỗi khi gọi storage API")
		return "", common.ErrStorageUpload
	}

	statusCode := resp.StatusCode()
	if statusCode != fasthttp.StatusOK && statusCode != fasthttp.StatusCreated {
		log.WithFields(map[string]interface{}{
			"bucket":     c.bucket,
			"path":       objectPath,
			"statusCode": statusCode,
			"response":   string(resp.Body()),
		}).Error("📦 [STORAGE] Storage API trả về lỗi")
		return "", common.ErrStorageUpload
	}

	log.WithFields(map[string]interface{}{
		"bucket": c.bucket,
		"path":   objectPath,
		"size":   utility.FormatBytes(uint64(len(data))),
	}).Info("📦 [STORAGE] Upload object thành công")
	return c.PublicURL(objectPath), nil
}
