package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUserDAO 封装 AdminUser 相关的数据库操作
type AdminUserDAO struct {
	db *gorm.DB
}

func NewAdminUserDAO(db *gorm.DB) *AdminUserDAO {
	return &AdminUserDAO{db: db}
}

func (dao *AdminUserDAO) Create(u *AdminUser) error {
	return dao.db.Create(u).Error
}

func (dao *AdminUserDAO) FindByID(id uint64) (*AdminUser, error) {
	var u AdminUser
	if err := dao.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (dao *AdminUserDAO) FindByUsername(username string) (*AdminUser, error) {
	if username == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var u AdminUser
	if err := dao.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (dao *AdminUserDAO) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := dao.db.Model(&AdminUser{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// UpdatePassword 只更新密码列（hash 由 service 层生成）。
func (dao *AdminUserDAO) UpdatePassword(id uint64, hash string) error {
	return dao.db.Model(&AdminUser{}).Where("id = ?", id).
		Update("password", hash).Error
}

// TouchLastLogin 登录成功后刷新最后登录时间。
func (dao *AdminUserDAO) TouchLastLogin(id uint64, at time.Time) error {
	return dao.db.Model(&AdminUser{}).Where("id = ?", id).
		Update("last_login_at", at).Error
}
