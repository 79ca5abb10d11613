package aisvc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"post_studio/internal/common"
	"post_studio/internal/logger"
)

// Kích thước ảnh sinh ra, khớp tỷ lệ 16:9 của preview bài đăng
const (
	imageWidth  = 1024
	imageHeight = 576
)

// ImageClient gọi dịch vụ sinh ảnh, nhận payload base64.
type ImageClient struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewImageClient tạo image client.
func NewImageClient(endpoint, apiKey, model string) *ImageClient {
	return &ImageClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		// Sinh ảnh chậm hơn sinh text đáng kể
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateImage sinh ảnh từ prompt và trả về bytes đã decode từ base64.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	log := logger.GetAppLogger()

	payload := map[string]interface{}{
		"model":  c.model,
		"prompt": prompt,
		"width":  imageWidth,
		"height": imageHeight,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/v1/images/generations", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("🎨 [IMAGE] Lỗi khi gọi image API")
		return nil, common.ErrImageGenerate
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("🎨 [IMAGE] Image API trả về lỗi")
		return nil, common.ErrImageGenerate
	}

	var result struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.WithError(err).Error("🎨 [IMAGE] Không parse được response từ image API")
		return nil, common.ErrImageGenerate
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, common.ErrImageGenerate
	}

	imageBytes, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		log.WithError(err).Error("🎨 [IMAGE] Payload base64 không hợp lệ")
		return nil, common.ErrImageGenerate
	}
	return imageBytes, nil
}
