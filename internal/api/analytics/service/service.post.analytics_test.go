package analyticssvc

import (
	"math"
	"testing"

	analyticsmodels "post_studio/internal/api/analytics/models"
)

func TestComputeEngagementRate_ViewsKhongDuong(t *testing.T) {
	if got := ComputeEngagementRate(10, 5, 2, 0); got != 0 {
		t.Errorf("ComputeEngagementRate(views=0) = %v, muốn 0 (không chia cho 0)", got)
	}
	if got := ComputeEngagementRate(10, 5, 2, -1); got != 0 {
		t.Errorf("ComputeEngagementRate(views=-1) = %v, muốn 0", got)
	}
}

// Overall rate tính trên tổng tuyệt đối, khác với avg của rate theo ngày:
// hai ngày (10/100) và (90/1000) cho avg 0.095 nhưng overall 100/1100.
func TestSummary_OverallEngagementRateTuTong(t *testing.T) {
	summary := analyticsmodels.AnalyticsSummary{
		TotalLikes:    60,
		TotalComments: 25,
		TotalShares:   15,
		TotalViews:    1100,
	}
	got := ComputeEngagementRate(
		summary.TotalLikes, summary.TotalComments, summary.TotalShares, summary.TotalViews)
	want := 100.0 / 1100.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("overall engagement rate = %v, muốn %v", got, want)
	}
}

func TestComputeEngagementRate(t *testing.T) {
	cases := []struct {
		likes, comments, shares, views int64
		want                           float64
	}{
		{10, 5, 5, 100, 0.2},
		{0, 0, 0, 100, 0},
		{100, 0, 0, 100, 1},
		{50, 50, 50, 100, 1.5},
	}
	for _, c := range cases {
		got := ComputeEngagementRate(c.likes, c.comments, c.shares, c.views)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ComputeEngagementRate(%d, %d, %d, %d) = %v, muốn %v",
				c.likes, c.comments, c.shares, c.views, got, c.want)
		}
	}
}
