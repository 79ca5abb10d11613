package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsdto "post_studio/internal/api/analytics/dto"
	analyticsmodels "post_studio/internal/api/analytics/models"
	analyticssvc "post_studio/internal/api/analytics/service"
	basehdl "post_studio/internal/api/base/handler"
)

// PostAnalyticsHandler xử lý các request đọc số liệu tương tác
type PostAnalyticsHandler struct {
	*basehdl.BaseHandler[analyticsmodels.PostAnalytics, analyticsdto.PostAnalyticsCreateInput, analyticsdto.PostAnalyticsUpdateInput]
	AnalyticsService *analyticssvc.PostAnalyticsService
}

// NewPostAnalyticsHandler tạo mới PostAnalyticsHandler
func NewPostAnalyticsHandler() (*PostAnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewPostAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post analytics service: %v", err)
	}
	hdl := &PostAnalyticsHandler{
		AnalyticsService: analyticsService,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[analyticsmodels.PostAnalytics, analyticsdto.PostAnalyticsCreateInput, analyticsdto.PostAnalyticsUpdateInput](analyticsService.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleSummary tổng hợp số liệu tương tác của owner cho dashboard.
func (h *PostAnalyticsHandler) HandleSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var params analyticsdto.AnalyticsSummaryParams
		if err := c.Bind().Query(&params); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		summary, err := h.AnalyticsService.Summary(c.Context(), h.GetUserID(c), params.From, params.To)
		h.HandleResponse(c, summary, err)
		return nil
	})
}
