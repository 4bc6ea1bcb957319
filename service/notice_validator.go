package service

import (
	"strings"
	"time"

	"github.com/cydxin/sac-cms/cons"
)

// 公告校验：纯函数，不读库不落库。错误信息直接透传给后台页面展示。
//
// 规则与读路径解耦：expires_at 只在写入时校验"严格大于当前时间"，
// 已入库的公告过期后不会被重新校验或自动下线。

// CreateNoticeReq 创建公告请求。ExpiresAt 按 RFC3339 绑定，
// 格式非法在 JSON 绑定阶段就会被拦下（参数错误，而非校验错误）。
type CreateNoticeReq struct {
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	Category  cons.NoticeCategory `json:"category"`
	Priority  cons.NoticePriority `json:"priority"`
	Venue     string              `json:"venue"`
	ExpiresAt time.Time           `json:"expiresAt"`
	IsActive  *bool               `json:"isActive"` // 不传默认 true，见 ApplyDefaults
}

// ApplyDefaults 显式补默认值，必须在校验之前调用（不依赖 schema 隐式默认）。
func (req *CreateNoticeReq) ApplyDefaults() {
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
}

// UpdateNoticeReq 部分更新请求：nil 表示该字段未提交，不参与校验与更新。
// posted_by 不在可更新字段之列（创建时写死）。
type UpdateNoticeReq struct {
	Title     *string              `json:"title"`
	Content   *string              `json:"content"`
	Category  *cons.NoticeCategory `json:"category"`
	Priority  *cons.NoticePriority `json:"priority"`
	Venue     *string              `json:"venue"`
	ExpiresAt *time.Time           `json:"expiresAt"`
	IsActive  *bool                `json:"isActive"`
}

// ValidateNewNotice 创建校验：
// 1) 必填字段一次性报全；2) 枚举闭集；3) 过期时间必须严格在 now 之后。
func ValidateNewNotice(req CreateNoticeReq, now time.Time) error {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Content) == "" {
		missing = append(missing, "content")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if req.Priority == "" {
		missing = append(missing, "priority")
	}
	if req.ExpiresAt.IsZero() {
		missing = append(missing, "expiresAt")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	if !req.Category.Valid() {
		return newFieldError("category", "Invalid category")
	}
	if !req.Priority.Valid() {
		return newFieldError("priority", "Invalid priority level")
	}
	if !req.ExpiresAt.After(now) {
		return newFieldError("expiresAt", "Expiry date must be in the future")
	}
	return nil
}

// ValidateNoticeUpdate 更新校验：只校验提交的字段，规则同创建。
// 提交了 title/content 但为空串同样算非法（不允许把必填字段清空）。
func ValidateNoticeUpdate(req UpdateNoticeReq, now time.Time) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return newFieldError("title", "Title cannot be empty")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return newFieldError("content", "Content cannot be empty")
	}
	if req.Category != nil && !req.Category.Valid() {
		return newFieldError("category", "Invalid category")
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return newFieldError("priority", "Invalid priority level")
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return newFieldError("expiresAt", "Expiry date must be in the future")
	}
	return nil
}
