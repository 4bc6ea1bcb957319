package repository

import (
	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"gorm.io/gorm"
)

// ContactDAO 封装 Contact 相关的数据库操作
type ContactDAO struct {
	db *gorm.DB
}

func NewContactDAO(db *gorm.DB) *ContactDAO {
	return &ContactDAO{db: db}
}

// WithDB 用于在事务（tx）中复用 DAO
func (dao *ContactDAO) WithDB(db *gorm.DB) *ContactDAO {
	if db == nil {
		return dao
	}
	return &ContactDAO{db: db}
}

func (dao *ContactDAO) Create(c *models.Contact) error {
	return dao.db.Create(c).Error
}

func (dao *ContactDAO) FindByID(id uint64) (*models.Contact, error) {
	var c models.Contact
	if err := dao.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsByEmail email 有唯一约束，创建/更新前先查重，excludeID 用于更新自身时排除。
func (dao *ContactDAO) ExistsByEmail(email string, excludeID uint64) (bool, error) {
	var count int64
	tx := dao.db.Model(&models.Contact{}).Where("email = ?", email)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	err := tx.Count(&count).Error
	return count > 0, err
}

func (dao *ContactDAO) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := dao.db.Model(&models.Contact{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (dao *ContactDAO) Update(id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return dao.db.Model(&models.Contact{}).Where("id = ?", id).Updates(fields).Error
}

func (dao *ContactDAO) Delete(id uint64) error {
	return dao.db.Where("id = ?", id).Delete(&models.Contact{}).Error
}

// ListActive 公开目录：只含启用的联系人，目录序优先，其次按创建时间倒序。
// category 为空时返回全部分类。
func (dao *ContactDAO) ListActive(category cons.ContactCategory) ([]models.Contact, error) {
	tx := dao.db.Model(&models.Contact{}).Where("is_active = ?", true)
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var rows []models.Contact
	err := tx.Order("display_order ASC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ListAll 后台列表：含已停用的联系人。
func (dao *ContactDAO) ListAll() ([]models.Contact, error) {
	var rows []models.Contact
	err := dao.db.Model(&models.Contact{}).
		Order("display_order ASC").Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
