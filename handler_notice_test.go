package sac_cms

import (
	"net/http/httptest"
	"testing"

	"github.com/cydxin/sac-cms/cons"
	"github.com/gin-gonic/gin"
)

func listQueryCtx(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/notices?"+rawQuery, nil)
	return c
}

func TestParseListNoticesReq_PublicDropsInvalidFilters(t *testing.T) {
	ctx := listQueryCtx(t, "category=party&priority=ASAP&page=2&limit=5")

	req := parseListNoticesReq(ctx, true)
	// 公开接口：旧链接里的脏枚举当作未传，不变成空结果
	if req.Category != "" || req.Priority != "" {
		t.Fatalf("invalid filters must be dropped, got category=%q priority=%q", req.Category, req.Priority)
	}
	if req.Page != 2 || req.Limit != 5 {
		t.Fatalf("page/limit parsing broken: %+v", req)
	}
}

func TestParseListNoticesReq_AdminKeepsRawFilters(t *testing.T) {
	ctx := listQueryCtx(t, "category=party")

	req := parseListNoticesReq(ctx, false)
	// 后台列表：过滤值原样透传，查不存在的分类就得到空页，
	// 而不是静默退化成"全部公告"
	if req.Category != cons.NoticeCategory("party") {
		t.Fatalf("admin filter must pass through raw, got %q", req.Category)
	}
}

func TestParseListNoticesReq_ValidFiltersKeptOnBothPaths(t *testing.T) {
	for _, drop := range []bool{true, false} {
		ctx := listQueryCtx(t, "category=technical&priority=urgent")
		req := parseListNoticesReq(ctx, drop)
		if req.Category != cons.NoticeCategoryTechnical || req.Priority != cons.NoticePriorityUrgent {
			t.Fatalf("drop=%v: valid filters must be kept, got %+v", drop, req)
		}
	}
}
