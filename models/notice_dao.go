package models

import (
	"github.com/cydxin/sac-cms/cons"
	"gorm.io/gorm"
)

// NoticeDAO 封装 Notice 相关的数据库操作
//
// 约定：
// - 只做"数据访问"（CRUD/查询封装），不做业务编排（权限、字段校验等）。
// - 事务边界应由 service 控制；如需在事务中执行，请使用 WithDB(tx)。
type NoticeDAO struct {
	db *gorm.DB
}

func NewNoticeDAO(db *gorm.DB) *NoticeDAO {
	return &NoticeDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *NoticeDAO) WithDB(db *gorm.DB) *NoticeDAO {
	if db == nil {
		return dao
	}
	return &NoticeDAO{db: db}
}

func (dao *NoticeDAO) Create(n *Notice) error {
	return dao.db.Create(n).Error
}

// FindByID 按主键查询，同时带出发布人（署名只展示 name/role）。
func (dao *NoticeDAO) FindByID(id uint64) (*Notice, error) {
	var n Notice
	if err := dao.db.Preload("PostedBy").Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ExistsByID 只查主键是否存在，用于 update/delete 前的存在性校验。
func (dao *NoticeDAO) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := dao.db.Model(&Notice{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update 部分更新：fields 只包含调用方显式提交的列，updated_at 由 GORM 维护。
// posted_by_id 不允许出现在 fields 里，该约束由 service 层保证。
func (dao *NoticeDAO) Update(id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return dao.db.Model(&Notice{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 硬删除（软删除走 is_active=false 的 Update）。
func (dao *NoticeDAO) Delete(id uint64) error {
	return dao.db.Where("id = ?", id).Delete(&Notice{}).Error
}

// NoticeQuery 列表过滤条件。零值字段表示不过滤。
type NoticeQuery struct {
	Search     string // title OR content 模糊匹配（大小写不敏感）
	Category   cons.NoticeCategory
	Priority   cons.NoticePriority
	OnlyActive bool // 公开读路径固定 true；后台列表 false（含已下线）

	Page  int
	Limit int
}

func (dao *NoticeDAO) applyQuery(q NoticeQuery) *gorm.DB {
	tx := dao.db.Model(&Notice{})
	if q.Search != "" {
		kw := "%" + q.Search + "%"
		tx = tx.Where("(title LIKE ? OR content LIKE ?)", kw, kw)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Priority != "" {
		tx = tx.Where("priority = ?", q.Priority)
	}
	if q.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	return tx
}

// Query 分页查询，返回当前页数据和过滤后的总数。固定按创建时间倒序。
func (dao *NoticeDAO) Query(q NoticeQuery) ([]Notice, int64, error) {
	var total int64
	if err := dao.applyQuery(q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Notice
	err := dao.applyQuery(q).
		Preload("PostedBy").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
