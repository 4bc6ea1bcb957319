package service

import (
	"errors"
	"time"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"gorm.io/gorm"
)

// NoticeService 公告生命周期：创建 -> （可选）更新 -> （可选）删除。
// 写操作都要求 actor 角色为 superadmin，且在任何库访问之前判定。
// 并发写同一条公告为 last-write-wins，不做乐观锁。
type NoticeService struct {
	*Service
	noticeDao *models.NoticeDAO
}

func NewNoticeService(s *Service) *NoticeService {
	return &NoticeService{
		Service:   s,
		noticeDao: models.NewNoticeDAO(s.DB),
	}
}

// --- types ---

// PostedByDTO 公告署名，只暴露 name/role。
type PostedByDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type NoticeDTO struct {
	ID        uint64              `json:"id"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	Category  cons.NoticeCategory `json:"category"`
	Priority  cons.NoticePriority `json:"priority"`
	Venue     string              `json:"venue,omitempty"`
	ExpiresAt time.Time           `json:"expiresAt"`
	IsActive  bool                `json:"isActive"`
	PostedBy  PostedByDTO         `json:"postedBy"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ListNoticesReq 后台列表过滤参数。未知参数由 handler 丢弃，这里只认这些字段。
type ListNoticesReq struct {
	Page     int
	Limit    int
	Search   string
	Category cons.NoticeCategory
	Priority cons.NoticePriority
}

// Pagination 分页信息，pages = ceil(total/limit)。
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type NoticeListResp struct {
	Notices    []NoticeDTO `json:"notices"`
	Pagination Pagination  `json:"pagination"`
}

func toNoticeDTO(n *models.Notice) *NoticeDTO {
	if n == nil {
		return nil
	}
	return &NoticeDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		Priority:  n.Priority,
		Venue:     n.Venue,
		ExpiresAt: n.ExpiresAt,
		IsActive:  n.IsActive,
		PostedBy: PostedByDTO{
			ID:   n.PostedByID,
			Name: n.PostedBy.Name,
			Role: n.PostedBy.Role,
		},
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// --- operations ---

// Create 发布公告：鉴权 -> 补默认值 -> 校验 -> 落库。
// postedBy 取 actor，创建后不再变更。
func (s *NoticeService) Create(actor Actor, req CreateNoticeReq) (*NoticeDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	req.ApplyDefaults()
	if err := ValidateNewNotice(req, time.Now()); err != nil {
		return nil, err
	}

	n := &models.Notice{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Priority:   req.Priority,
		Venue:      req.Venue,
		ExpiresAt:  req.ExpiresAt,
		IsActive:   *req.IsActive,
		PostedByID: actor.ID,
	}
	if err := s.noticeDao.Create(n); err != nil {
		return nil, err
	}

	// 回读带出署名信息
	created, err := s.noticeDao.FindByID(n.ID)
	if err != nil {
		return nil, err
	}
	return toNoticeDTO(created), nil
}

// Get 后台公告详情。
func (s *NoticeService) Get(actor Actor, id uint64) (*NoticeDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}
	n, err := s.noticeDao.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNoticeDTO(n), nil
}

// List 后台公告列表：支持搜索/分类/优先级过滤，不过滤 is_active 与过期时间
// （已下线、已过期的公告后台都要能看到）。
func (s *NoticeService) List(actor Actor, req ListNoticesReq) (*NoticeListResp, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}
	return s.query(req, false)
}

// ListPublic 对外公告列表：固定 is_active=true，不鉴权。
// 决策：不按 expires_at 过滤，过期公告在手动下线/删除前保持可见（见 DESIGN.md）。
func (s *NoticeService) ListPublic(req ListNoticesReq) (*NoticeListResp, error) {
	return s.query(req, true)
}

func (s *NoticeService) query(req ListNoticesReq, onlyActive bool) (*NoticeListResp, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	rows, total, err := s.noticeDao.Query(models.NoticeQuery{
		Search:     req.Search,
		Category:   req.Category,
		Priority:   req.Priority,
		OnlyActive: onlyActive,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]NoticeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toNoticeDTO(&rows[i]))
	}
	return &NoticeListResp{
		Notices: out,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: totalPages(total, limit),
		},
	}, nil
}

// Update 部分更新：先确认存在，再只校验/写入提交的字段。
// id 与 posted_by 永不更新。
func (s *NoticeService) Update(actor Actor, id uint64, req UpdateNoticeReq) (*NoticeDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	exists, err := s.noticeDao.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	if err := ValidateNoticeUpdate(req, time.Now()); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Venue != nil {
		fields["venue"] = *req.Venue
	}
	if req.ExpiresAt != nil {
		fields["expires_at"] = *req.ExpiresAt
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.noticeDao.Update(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.noticeDao.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toNoticeDTO(updated), nil
}

// Delete 硬删除（下线用 Update isActive=false）。
func (s *NoticeService) Delete(actor Actor, id uint64) error {
	if !actor.IsSuperadmin() {
		return ErrPermissionDenied
	}

	exists, err := s.noticeDao.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.noticeDao.Delete(id)
}
