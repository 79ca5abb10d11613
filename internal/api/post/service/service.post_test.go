// Package postsvc - Test các hàm thuần về vòng đời và validate bài đăng.
package postsvc

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	postdto "post_studio/internal/api/post/dto"
	postmodels "post_studio/internal/api/post/models"
	"post_studio/internal/common"
)

const testNow = int64(1_700_000_000_000)

func int64Ptr(v int64) *int64 { return &v }

func TestDeriveStatus_NilLaDraft(t *testing.T) {
	status, err := DeriveStatus(nil, testNow)
	if err != nil {
		t.Fatalf("DeriveStatus(nil) trả về lỗi: %v", err)
	}
	if status != postmodels.PostStatusDraft {
		t.Errorf("DeriveStatus(nil) = %q, muốn %q", status, postmodels.PostStatusDraft)
	}
}

func TestDeriveStatus_TuongLaiLaScheduled(t *testing.T) {
	status, err := DeriveStatus(int64Ptr(testNow+1), testNow)
	if err != nil {
		t.Fatalf("DeriveStatus(tương lai) trả về lỗi: %v", err)
	}
	if status != postmodels.PostStatusScheduled {
		t.Errorf("DeriveStatus(tương lai) = %q, muốn %q", status, postmodels.PostStatusScheduled)
	}
}

func TestDeriveStatus_QuaKhuVaBangNowBiTuChoi(t *testing.T) {
	for _, ts := range []int64{testNow, testNow - 1} {
		if _, err := DeriveStatus(int64Ptr(ts), testNow); !errors.Is(err, common.ErrPostScheduleInPast) {
			t.Errorf("DeriveStatus(%d, now=%d) = %v, muốn ErrPostScheduleInPast", ts, testNow, err)
		}
	}
}

// DeriveStatus là hàm thuần: cùng input phải cho cùng output, không phụ thuộc đồng hồ thật.
func TestDeriveStatus_Pure(t *testing.T) {
	scheduled := int64Ptr(testNow + 60_000)
	first, err1 := DeriveStatus(scheduled, testNow)
	second, err2 := DeriveStatus(scheduled, testNow)
	if first != second || (err1 == nil) != (err2 == nil) {
		t.Errorf("DeriveStatus không thuần: lần 1 (%q, %v), lần 2 (%q, %v)", first, err1, second, err2)
	}
}

func validDraft() DraftInput {
	return DraftInput{
		Content:  "Bài đăng hợp lệ",
		Platform: "facebook",
	}
}

func TestValidateDraft_ContentRong(t *testing.T) {
	for _, content := range []string{"", "   ", "\t\n"} {
		in := validDraft()
		in.Content = content
		if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostEmptyContent) {
			t.Errorf("ValidateDraft(content=%q) = %v, muốn ErrPostEmptyContent", content, err)
		}
	}
}

func TestValidateDraft_BienContent2200(t *testing.T) {
	in := validDraft()
	in.Content = strings.Repeat("a", MaxContentLength)
	if err := ValidateDraft(in, testNow); err != nil {
		t.Errorf("ValidateDraft(2200 ký tự) = %v, muốn nil (biên phải pass)", err)
	}

	in.Content = strings.Repeat("a", MaxContentLength+1)
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostContentTooLong) {
		t.Errorf("ValidateDraft(2201 ký tự) = %v, muốn ErrPostContentTooLong", err)
	}
}

func TestValidateDraft_LichQuaKhu(t *testing.T) {
	in := validDraft()
	in.ScheduledFor = int64Ptr(testNow - 1)
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostScheduleInPast) {
		t.Errorf("ValidateDraft(lịch quá khứ) = %v, muốn ErrPostScheduleInPast", err)
	}
}

func TestValidateDraft_AnhGifBiTuChoi(t *testing.T) {
	in := validDraft()
	in.Media = []StagedMedia{{ContentType: "image/gif", Size: 100}}
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostImageType) {
		t.Errorf("ValidateDraft(image/gif) = %v, muốn ErrPostImageType", err)
	}
}

func TestValidateDraft_NenTangKhongHoTro(t *testing.T) {
	in := validDraft()
	in.Platform = "myspace"
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostPlatform) {
		t.Errorf("ValidateDraft(platform=myspace) = %v, muốn ErrPostPlatform", err)
	}
}

// Thứ tự kiểm tra cố định: content rỗng phải thắng mọi lỗi phía sau.
func TestValidateDraft_ThuTuLoi(t *testing.T) {
	in := DraftInput{
		Content:      "",
		ScheduledFor: int64Ptr(testNow - 1),
		Media:        []StagedMedia{{ContentType: "image/gif"}},
		Platform:     "myspace",
	}
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostEmptyContent) {
		t.Errorf("ValidateDraft(nhiều lỗi) = %v, muốn ErrPostEmptyContent (lỗi đầu tiên thắng)", err)
	}

	// Content hợp lệ thì lỗi lịch phải thắng lỗi media và platform
	in.Content = "ok"
	if err := ValidateDraft(in, testNow); !errors.Is(err, common.ErrPostScheduleInPast) {
		t.Errorf("ValidateDraft(lịch+media+platform lỗi) = %v, muốn ErrPostScheduleInPast", err)
	}
}

func TestValidateImage_Bien5MiB(t *testing.T) {
	if err := ValidateImage("image/png", MaxImageSize); err != nil {
		t.Errorf("ValidateImage(5 MiB) = %v, muốn nil (biên phải pass)", err)
	}
	if err := ValidateImage("image/png", MaxImageSize+1); !errors.Is(err, common.ErrPostImageSize) {
		t.Errorf("ValidateImage(5 MiB + 1 byte) = %v, muốn ErrPostImageSize", err)
	}
}

func TestValidateImage_LoaiAnh(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp"} {
		if err := ValidateImage(ct, 100); err != nil {
			t.Errorf("ValidateImage(%s) = %v, muốn nil", ct, err)
		}
	}
	for _, ct := range []string{"image/gif", "image/bmp", "video/mp4", "", "text/html"} {
		if err := ValidateImage(ct, 100); !errors.Is(err, common.ErrPostImageType) {
			t.Errorf("ValidateImage(%s) = %v, muốn ErrPostImageType", ct, err)
		}
	}
}

func TestContentTypeFromURL(t *testing.T) {
	cases := map[string]string{
		"https://cdn.example.com/a/b/photo.jpg":       "image/jpeg",
		"https://cdn.example.com/a/b/photo.png?v=2":   "image/png",
		"https://cdn.example.com/a/b/animation.gif":   "image/gif",
		"https://cdn.example.com/a/b/khong-duoi-file": "",
	}
	for url, want := range cases {
		if got := ContentTypeFromURL(url); got != want {
			t.Errorf("ContentTypeFromURL(%q) = %q, muốn %q", url, got, want)
		}
	}
}

func TestBuildListFilter_OwnerLuonCoMat(t *testing.T) {
	owner := primitive.NewObjectID()
	for _, status := range []string{"", "all", "draft", "scheduled", "published", "failed"} {
		filter, err := BuildListFilter(owner, status)
		if err != nil {
			t.Fatalf("BuildListFilter(%q) trả về lỗi: %v", status, err)
		}
		if filter["ownerId"] != owner {
			t.Errorf("BuildListFilter(%q) thiếu ownerId trong filter: %v", status, filter)
		}
	}
}

func TestBuildListFilter_StatusFilter(t *testing.T) {
	owner := primitive.NewObjectID()

	filter, err := BuildListFilter(owner, "draft")
	if err != nil {
		t.Fatalf("BuildListFilter(draft) trả về lỗi: %v", err)
	}
	if filter["status"] != "draft" {
		t.Errorf("BuildListFilter(draft) không thêm điều kiện status: %v", filter)
	}

	filter, err = BuildListFilter(owner, "all")
	if err != nil {
		t.Fatalf("BuildListFilter(all) trả về lỗi: %v", err)
	}
	if _, ok := filter["status"]; ok {
		t.Errorf("BuildListFilter(all) không được thêm status: %v", filter)
	}

	if _, err := BuildListFilter(owner, "deleted"); err == nil {
		t.Error("BuildListFilter(deleted) phải bị từ chối")
	}
}

func TestBuildPost_DeriveStatus(t *testing.T) {
	owner := primitive.NewObjectID()

	post, err := BuildPost(owner, postdto.PostCreateInput{Content: "nháp", Platform: "facebook"}, testNow)
	if err != nil {
		t.Fatalf("BuildPost(không lịch) trả về lỗi: %v", err)
	}
	if post.Status != postmodels.PostStatusDraft {
		t.Errorf("BuildPost(không lịch) status = %q, muốn draft", post.Status)
	}
	if post.OwnerID != owner {
		t.Errorf("BuildPost không gán owner: %v", post.OwnerID)
	}

	post, err = BuildPost(owner, postdto.PostCreateInput{
		Content: "đã lên lịch", Platform: "facebook", ScheduledFor: int64Ptr(testNow + 60_000),
	}, testNow)
	if err != nil {
		t.Fatalf("BuildPost(lịch tương lai) trả về lỗi: %v", err)
	}
	if post.Status != postmodels.PostStatusScheduled {
		t.Errorf("BuildPost(lịch tương lai) status = %q, muốn scheduled", post.Status)
	}
}

// Client gửi status trong body thì bị bỏ qua: input không có field status,
// status luôn do server derive.
func TestBuildPost_ClientKhongGhiDuocStatus(t *testing.T) {
	var input postdto.PostCreateInput
	body := `{"content":"bài mới","platform":"facebook","status":"published"}`
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("Unmarshal input trả về lỗi: %v", err)
	}

	post, err := BuildPost(primitive.NewObjectID(), input, testNow)
	if err != nil {
		t.Fatalf("BuildPost trả về lỗi: %v", err)
	}
	if post.Status != postmodels.PostStatusDraft {
		t.Errorf("Status do client gửi phải bị bỏ qua: got %q, muốn draft", post.Status)
	}
}

func scheduledPost() postmodels.Post {
	scheduled := testNow + 3_600_000
	return postmodels.Post{
		ID:           primitive.NewObjectID(),
		OwnerID:      primitive.NewObjectID(),
		Content:      "bài đã lên lịch",
		Platform:     "facebook",
		Status:       postmodels.PostStatusScheduled,
		ScheduledFor: &scheduled,
	}
}

func TestApplyUpdate_ClearScheduleVeDraft(t *testing.T) {
	existing := scheduledPost()

	merged, updateData, err := ApplyUpdate(existing, postdto.PostUpdateInput{ClearSchedule: true}, testNow)
	if err != nil {
		t.Fatalf("ApplyUpdate(ClearSchedule) trả về lỗi: %v", err)
	}
	if merged.Status != postmodels.PostStatusDraft {
		t.Errorf("Gỡ lịch phải đưa bài về draft: got %q", merged.Status)
	}
	if merged.ScheduledFor != nil {
		t.Error("Gỡ lịch phải xóa scheduledFor trên bài sau merge")
	}
	if updateData.Set["status"] != postmodels.PostStatusDraft {
		t.Errorf("UpdateData phải ghi status draft: %v", updateData.Set)
	}
	if _, ok := updateData.Unset["scheduledFor"]; !ok {
		t.Errorf("UpdateData phải $unset scheduledFor: %v", updateData.Unset)
	}
}

func TestApplyUpdate_LichQuaKhuBiTuChoi(t *testing.T) {
	existing := scheduledPost()

	_, _, err := ApplyUpdate(existing, postdto.PostUpdateInput{ScheduledFor: int64Ptr(testNow - 1)}, testNow)
	if !errors.Is(err, common.ErrPostScheduleInPast) {
		t.Errorf("ApplyUpdate(lịch quá khứ) = %v, muốn ErrPostScheduleInPast", err)
	}
}

// Dời lịch một bài draft sang tương lai phải derive lại status thành scheduled.
func TestApplyUpdate_DeriveLaiStatus(t *testing.T) {
	existing := scheduledPost()
	existing.Status = postmodels.PostStatusDraft
	existing.ScheduledFor = nil

	merged, updateData, err := ApplyUpdate(existing, postdto.PostUpdateInput{ScheduledFor: int64Ptr(testNow + 60_000)}, testNow)
	if err != nil {
		t.Fatalf("ApplyUpdate(thêm lịch) trả về lỗi: %v", err)
	}
	if merged.Status != postmodels.PostStatusScheduled {
		t.Errorf("Thêm lịch phải đưa bài sang scheduled: got %q", merged.Status)
	}
	if updateData.Set["scheduledFor"] != testNow+60_000 {
		t.Errorf("UpdateData thiếu scheduledFor mới: %v", updateData.Set)
	}
}

// Nội dung sau merge vẫn phải qua validate: rút content về rỗng bị từ chối.
func TestApplyUpdate_ValidateSauMerge(t *testing.T) {
	existing := scheduledPost()
	empty := "   "

	_, _, err := ApplyUpdate(existing, postdto.PostUpdateInput{Content: &empty}, testNow)
	if !errors.Is(err, common.ErrPostEmptyContent) {
		t.Errorf("ApplyUpdate(content rỗng) = %v, muốn ErrPostEmptyContent", err)
	}
}

// Filter của hai owner khác nhau không bao giờ trùng nhau: dữ liệu được cô lập theo owner.
func TestBuildListFilter_CoLapTheoOwner(t *testing.T) {
	ownerA := primitive.NewObjectID()
	ownerB := primitive.NewObjectID()
	filterA, _ := BuildListFilter(ownerA, "all")
	filterB, _ := BuildListFilter(ownerB, "all")
	if filterA["ownerId"] == filterB["ownerId"] {
		t.Error("Filter của hai owner khác nhau không được trùng ownerId")
	}
}
