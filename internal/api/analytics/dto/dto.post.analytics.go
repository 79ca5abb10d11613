package analyticsdto

// PostAnalyticsCreateInput đầu vào tạo số liệu (chỉ pipeline nội bộ dùng,
// route client là read-only).
type PostAnalyticsCreateInput struct {
	PostID   string `json:"postId" validate:"required"`
	Platform string `json:"platform" validate:"required,post_platform"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
	Views    int64  `json:"views"`
	Reach    int64  `json:"reach"`
	Date     int64  `json:"date" validate:"required"`
}

// PostAnalyticsUpdateInput đầu vào cập nhật số liệu.
type PostAnalyticsUpdateInput struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Views    int64 `json:"views"`
	Reach    int64 `json:"reach"`
}

// AnalyticsSummaryParams tham số query cho endpoint summary.
type AnalyticsSummaryParams struct {
	From *int64 `query:"from"`
	To   *int64 `query:"to"`
}
