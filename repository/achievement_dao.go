package repository

import (
	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"gorm.io/gorm"
)

// AchievementDAO 封装 Achievement 相关的数据库操作
//
// 约定：
// - 只做"数据访问"（CRUD/查询封装），不做业务编排（权限、字段校验等）。
// - 事务边界应由 service 控制；如需在事务中执行，请使用 WithDB(tx)。
type AchievementDAO struct {
	db *gorm.DB
}

func NewAchievementDAO(db *gorm.DB) *AchievementDAO {
	return &AchievementDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *AchievementDAO) WithDB(db *gorm.DB) *AchievementDAO {
	if db == nil {
		return dao
	}
	return &AchievementDAO{db: db}
}

func (dao *AchievementDAO) Create(a *models.Achievement) error {
	return dao.db.Create(a).Error
}

func (dao *AchievementDAO) FindByID(id uint64) (*models.Achievement, error) {
	var a models.Achievement
	if err := dao.db.Preload("PostedBy").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (dao *AchievementDAO) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := dao.db.Model(&models.Achievement{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (dao *AchievementDAO) Update(id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return dao.db.Model(&models.Achievement{}).Where("id = ?", id).Updates(fields).Error
}

func (dao *AchievementDAO) Delete(id uint64) error {
	return dao.db.Where("id = ?", id).Delete(&models.Achievement{}).Error
}

// AchievementQuery 列表过滤条件。零值字段表示不过滤。
type AchievementQuery struct {
	Category   cons.AchievementCategory
	Status     cons.AchievementStatus
	OnlyActive bool

	Page  int
	Limit int
}

func (dao *AchievementDAO) applyQuery(q AchievementQuery) *gorm.DB {
	tx := dao.db.Model(&models.Achievement{})
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.OnlyActive {
		tx = tx.Where("is_active = ?", true)
	}
	return tx
}

// Query 分页查询。展示页按成果日期倒序（最新成果在前）。
func (dao *AchievementDAO) Query(q AchievementQuery) ([]models.Achievement, int64, error) {
	var total int64
	if err := dao.applyQuery(q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Achievement
	err := dao.applyQuery(q).
		Order("date DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListRecent 首页"近期成果"位：is_recent 且对外可见，按日期倒序取前 limit 条。
func (dao *AchievementDAO) ListRecent(limit int) ([]models.Achievement, error) {
	var rows []models.Achievement
	err := dao.db.Model(&models.Achievement{}).
		Where("is_recent = ? AND status = ? AND is_active = ?", true, cons.AchievementStatusActive, true).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// AchievementStats 成果页顶部的汇总数字。
type AchievementStats struct {
	Total      int64    `json:"total"`
	Awards     int64    `json:"awards"` // highlights 条目总数
	Categories []string `json:"categories"`
}

// Stats 统计对外可见成果：总数、奖项数（highlights JSON 数组长度之和）、出现过的分类。
func (dao *AchievementDAO) Stats() (*AchievementStats, error) {
	visible := func() *gorm.DB {
		return dao.db.Model(&models.Achievement{}).
			Where("status = ? AND is_active = ?", cons.AchievementStatusActive, true)
	}

	var stats AchievementStats
	if err := visible().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	// JSON_LENGTH 为 MySQL 函数；highlights 为空时记 0
	if err := visible().
		Select("COALESCE(SUM(JSON_LENGTH(highlights)), 0)").
		Scan(&stats.Awards).Error; err != nil {
		return nil, err
	}
	if err := visible().
		Distinct().
		Pluck("category", &stats.Categories).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
