package postdto

// PostCreateInput đầu vào tạo bài đăng. Không có field status:
// trạng thái luôn được server derive từ scheduledFor.
// Content/Platform không gắn validate required: thứ tự kiểm tra và mã lỗi
// cụ thể do ValidateDraft quyết định.
type PostCreateInput struct {
	Content      string   `json:"content" validate:"omitempty,no_xss"`
	MediaUrls    []string `json:"mediaUrls"`
	ScheduledFor *int64   `json:"scheduledFor"`
	Platform     string   `json:"platform"`
}

// PostUpdateInput đầu vào cập nhật bài đăng. Các field pointer để phân biệt
// "không gửi" với "gửi giá trị rỗng". ClearSchedule=true gỡ lịch đăng và
// đưa bài về draft.
type PostUpdateInput struct {
	Content       *string  `json:"content" validate:"omitempty,no_xss"`
	MediaUrls     []string `json:"mediaUrls"`
	ScheduledFor  *int64   `json:"scheduledFor"`
	ClearSchedule bool     `json:"clearSchedule"`
	Platform      *string  `json:"platform"`
}

// PostCalendarParams tham số query cho endpoint calendar.
type PostCalendarParams struct {
	From *int64 `query:"from"`
	To   *int64 `query:"to"`
}
