package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"github.com/cydxin/sac-cms/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AchievementService 成果展示的后台维护与对外读取。
// 图片/团队/亮点/外链都按 JSON 列存储，对象存储本身是外部系统，
// 这里只存上传结果的元数据。
type AchievementService struct {
	*Service
	achievementDao *repository.AchievementDAO
}

func NewAchievementService(s *Service) *AchievementService {
	return &AchievementService{
		Service:        s,
		achievementDao: repository.NewAchievementDAO(s.DB),
	}
}

// --- types ---

// AchievementImage 上传后的图片元数据（name/key/url/size/type 均由上传方给出）。
type AchievementImage struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type AchievementLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type AchievementDTO struct {
	ID              uint64                   `json:"id"`
	Title           string                   `json:"title"`
	Category        cons.AchievementCategory `json:"category"`
	Description     string                   `json:"description"`
	Date            time.Time                `json:"date"`
	Images          []AchievementImage       `json:"images"`
	Team            []string                 `json:"team"`
	Highlights      []string                 `json:"highlights"`
	Link            *AchievementLink         `json:"link,omitempty"`
	IsRecent        bool                     `json:"isRecent"`
	DisplayPriority int                      `json:"displayPriority"`
	Status          cons.AchievementStatus   `json:"status"`
	ExpiresAt       time.Time                `json:"expiresAt"`
	IsActive        bool                     `json:"isActive"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

type CreateAchievementReq struct {
	Title           string                   `json:"title"`
	Category        cons.AchievementCategory `json:"category"`
	Description     string                   `json:"description"`
	Date            time.Time                `json:"date"`
	Images          []AchievementImage       `json:"images"`
	Team            []string                 `json:"team"`
	Highlights      []string                 `json:"highlights"`
	Link            *AchievementLink         `json:"link"`
	IsRecent        bool                     `json:"isRecent"`
	DisplayPriority int                      `json:"displayPriority"`
	Status          cons.AchievementStatus   `json:"status"`    // 不传默认 active
	ExpiresAt       *time.Time               `json:"expiresAt"` // 不传默认 now+30d
	IsActive        *bool                    `json:"isActive"`  // 不传默认 true
}

// achievementExpiryOffset 默认展示期
const achievementExpiryOffset = 30 * 24 * time.Hour

// ApplyDefaults 显式补默认值，必须在校验之前调用。
func (req *CreateAchievementReq) ApplyDefaults(now time.Time) {
	if req.Status == "" {
		req.Status = cons.AchievementStatusActive
	}
	if req.ExpiresAt == nil {
		exp := now.Add(achievementExpiryOffset)
		req.ExpiresAt = &exp
	}
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
}

type UpdateAchievementReq struct {
	Title           *string                   `json:"title"`
	Category        *cons.AchievementCategory `json:"category"`
	Description     *string                   `json:"description"`
	Date            *time.Time                `json:"date"`
	Images          []AchievementImage        `json:"images"`
	Team            []string                  `json:"team"`
	Highlights      []string                  `json:"highlights"`
	Link            *AchievementLink          `json:"link"`
	IsRecent        *bool                     `json:"isRecent"`
	DisplayPriority *int                      `json:"displayPriority"`
	Status          *cons.AchievementStatus   `json:"status"`
	ExpiresAt       *time.Time                `json:"expiresAt"`
	IsActive        *bool                     `json:"isActive"`
}

type ListAchievementsReq struct {
	Page     int
	Limit    int
	Category cons.AchievementCategory
	Status   cons.AchievementStatus
}

type AchievementListResp struct {
	Achievements []AchievementDTO `json:"achievements"`
	Pagination   Pagination       `json:"pagination"`
}

// ValidateNewAchievement 创建校验，规则与公告一致：缺失字段一次报全、枚举闭集。
func ValidateNewAchievement(req CreateAchievementReq) error {
	var missing []string
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	if !req.Category.Valid() {
		return newFieldError("category", "Invalid category")
	}
	if !req.Status.Valid() {
		return newFieldError("status", "Invalid status")
	}
	return nil
}

func toAchievementDTO(a *models.Achievement) (*AchievementDTO, error) {
	if a == nil {
		return nil, nil
	}
	dto := &AchievementDTO{
		ID:              a.ID,
		Title:           a.Title,
		Category:        a.Category,
		Description:     a.Description,
		Date:            a.Date,
		Images:          []AchievementImage{},
		Team:            []string{},
		Highlights:      []string{},
		IsRecent:        a.IsRecent,
		DisplayPriority: a.DisplayPriority,
		Status:          a.Status,
		ExpiresAt:       a.ExpiresAt,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if len(a.Images) > 0 {
		if err := json.Unmarshal(a.Images, &dto.Images); err != nil {
			return nil, err
		}
	}
	if len(a.Team) > 0 {
		if err := json.Unmarshal(a.Team, &dto.Team); err != nil {
			return nil, err
		}
	}
	if len(a.Highlights) > 0 {
		if err := json.Unmarshal(a.Highlights, &dto.Highlights); err != nil {
			return nil, err
		}
	}
	if len(a.Link) > 0 {
		var link AchievementLink
		if err := json.Unmarshal(a.Link, &link); err != nil {
			return nil, err
		}
		if link.URL != "" {
			dto.Link = &link
		}
	}
	return dto, nil
}

// mustJSON 序列化进 JSON 列；v 为 nil 时写入空数组而不是 NULL，简化读侧处理。
func mustJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON("[]"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// --- operations ---

// Create 发布成果，流程同公告：鉴权 -> 补默认值 -> 校验 -> 落库。
func (s *AchievementService) Create(actor Actor, req CreateAchievementReq) (*AchievementDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	req.ApplyDefaults(time.Now())
	if err := ValidateNewAchievement(req); err != nil {
		return nil, err
	}

	images, err := mustJSON(req.Images)
	if err != nil {
		return nil, err
	}
	team, err := mustJSON(req.Team)
	if err != nil {
		return nil, err
	}
	highlights, err := mustJSON(req.Highlights)
	if err != nil {
		return nil, err
	}
	var link datatypes.JSON
	if req.Link != nil {
		if link, err = mustJSON(req.Link); err != nil {
			return nil, err
		}
	}

	a := &models.Achievement{
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		Date:            req.Date,
		Images:          images,
		Team:            team,
		Highlights:      highlights,
		Link:            link,
		IsRecent:        req.IsRecent,
		DisplayPriority: req.DisplayPriority,
		Status:          req.Status,
		PostedByID:      actor.ID,
		ExpiresAt:       *req.ExpiresAt,
		IsActive:        *req.IsActive,
	}
	if err := s.achievementDao.Create(a); err != nil {
		return nil, err
	}
	return toAchievementDTO(a)
}

// Get 后台成果详情。
func (s *AchievementService) Get(actor Actor, id uint64) (*AchievementDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}
	a, err := s.achievementDao.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAchievementDTO(a)
}

// List 后台成果列表（含 archived 与已下线）。
func (s *AchievementService) List(actor Actor, req ListAchievementsReq) (*AchievementListResp, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}
	return s.query(req, false)
}

// ListPublic 展示页列表：只含 active 且未下线的成果。
func (s *AchievementService) ListPublic(req ListAchievementsReq) (*AchievementListResp, error) {
	req.Status = cons.AchievementStatusActive
	return s.query(req, true)
}

func (s *AchievementService) query(req ListAchievementsReq, onlyActive bool) (*AchievementListResp, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	rows, total, err := s.achievementDao.Query(repository.AchievementQuery{
		Category:   req.Category,
		Status:     req.Status,
		OnlyActive: onlyActive,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]AchievementDTO, 0, len(rows))
	for i := range rows {
		dto, err := toAchievementDTO(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return &AchievementListResp{
		Achievements: out,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: totalPages(total, limit),
		},
	}, nil
}

// Recent 首页"近期成果"位，默认 3 条。
func (s *AchievementService) Recent(limit int) ([]AchievementDTO, error) {
	if limit <= 0 {
		limit = 3
	}
	rows, err := s.achievementDao.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]AchievementDTO, 0, len(rows))
	for i := range rows {
		dto, err := toAchievementDTO(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// Stats 成果页顶部汇总。
func (s *AchievementService) Stats() (*repository.AchievementStats, error) {
	return s.achievementDao.Stats()
}

// Update 部分更新。切片字段（images/team/highlights）只有非 nil 才覆盖。
func (s *AchievementService) Update(actor Actor, id uint64, req UpdateAchievementReq) (*AchievementDTO, error) {
	if !actor.IsSuperadmin() {
		return nil, ErrPermissionDenied
	}

	exists, err := s.achievementDao.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, newFieldError("title", "Title cannot be empty")
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, newFieldError("category", "Invalid category")
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, newFieldError("status", "Invalid status")
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Images != nil {
		v, err := mustJSON(req.Images)
		if err != nil {
			return nil, err
		}
		fields["images"] = v
	}
	if req.Team != nil {
		v, err := mustJSON(req.Team)
		if err != nil {
			return nil, err
		}
		fields["team"] = v
	}
	if req.Highlights != nil {
		v, err := mustJSON(req.Highlights)
		if err != nil {
			return nil, err
		}
		fields["highlights"] = v
	}
	if req.Link != nil {
		v, err := mustJSON(req.Link)
		if err != nil {
			return nil, err
		}
		fields["link"] = v
	}
	if req.IsRecent != nil {
		fields["is_recent"] = *req.IsRecent
	}
	if req.DisplayPriority != nil {
		fields["display_priority"] = *req.DisplayPriority
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.ExpiresAt != nil {
		fields["expires_at"] = *req.ExpiresAt
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.achievementDao.Update(id, fields); err != nil {
		return nil, err
	}

	updated, err := s.achievementDao.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toAchievementDTO(updated)
}

// Delete 硬删除。
func (s *AchievementService) Delete(actor Actor, id uint64) error {
	if !actor.IsSuperadmin() {
		return ErrPermissionDenied
	}

	exists, err := s.achievementDao.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.achievementDao.Delete(id)
}
