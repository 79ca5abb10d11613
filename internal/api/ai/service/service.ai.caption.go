// Package aisvc - service sinh caption và ảnh qua các provider bên ngoài.
package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"post_studio/internal/common"
	"post_studio/internal/logger"
)

// Tham số gọi LLM sinh caption
const (
	captionMaxTokens   = 500
	captionTemperature = 0.7
)

// CaptionClient gọi LLM endpoint (messages API) để sinh caption.
type CaptionClient struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewCaptionClient tạo caption client.
func NewCaptionClient(endpoint, apiKey, model string) *CaptionClient {
	return &CaptionClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateCaption gọi LLM sinh caption cho một chủ đề. Provider lỗi trả về
// một lỗi BIZ duy nhất, không retry.
func (c *CaptionClient) GenerateCaption(ctx context.Context, topic string, tone string) (string, error) {
	log := logger.GetAppLogger()

	prompt := fmt.Sprintf("Viết một caption mạng xã hội hấp dẫn về chủ đề: %s", topic)
	if tone != "" {
		prompt += fmt.Sprintf(". Giọng điệu: %s", tone)
	}

	payload := map[string]interface{}{
		"model":       c.model,
		"max_tokens":  captionMaxTokens,
		"temperature": captionTemperature,
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("🤖 [CAPTION] Lỗi khi gọi LLM API")
		return "", common.ErrCaptionGenerate
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("🤖 [CAPTION] LLM API trả về lỗi")
		return "", common.ErrCaptionGenerate
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.WithError(err).Error("🤖 [CAPTION] Không parse được response từ LLM")
		return "", common.ErrCaptionGenerate
	}
	for _, block := range result.Content {
		if block.Type == "text" && block.Text != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", common.ErrCaptionGenerate
}
