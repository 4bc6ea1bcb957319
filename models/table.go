package models

import (
	"time"

	"github.com/cydxin/sac-cms/cons"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	prefix = "sac_"
)

// AdminUser 后台管理员表
type AdminUser struct {
	ID          uint64     `gorm:"primarykey"`
	UID         string     `gorm:"size:36;uniqueIndex;not null"` // 对外管理员 ID
	Username    string     `gorm:"size:50;uniqueIndex;not null"` // 登录账号
	Name        string     `gorm:"size:100;not null"`            // 显示名（公告署名用）
	Password    string     `gorm:"size:255;not null"`            // bcrypt hash
	Role        string     `gorm:"size:32;index;not null;default:admin"` // 角色: superadmin/admin
	IsActive    bool       `gorm:"default:true"`                 // 停用后无法登录
	LastLoginAt *time.Time // 最后登录时间
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// 关联关系
	Notices []Notice `gorm:"foreignKey:PostedByID"`
}

func (AdminUser) TableName() string {
	return prefix + "admin_user"
}

// Notice 公告表
//
// 两个"下线"语义是独立的：
// - is_active=false 软删除/隐藏（对外不可见，后台仍可管理）
// - expires_at 只在写入时校验必须是未来时间，过期后不会被自动下线，
//   对外是否继续展示由读路径决定（当前行为：继续展示，见 DESIGN.md）
//
// 公告删除是硬删除，因此这里没有 gorm.DeletedAt。
type Notice struct {
	ID         uint64              `gorm:"primarykey"`
	Title      string              `gorm:"size:200;not null"`
	Content    string              `gorm:"type:text;not null"`
	Category   cons.NoticeCategory `gorm:"size:32;index;not null"` // 闭集，见 cons
	Priority   cons.NoticePriority `gorm:"size:16;index;not null"`
	Venue      string              `gorm:"size:200"`       // 地点，可选
	ExpiresAt  time.Time           `gorm:"index;not null"` // 写入时必须严格大于当前时间
	IsActive   bool                `gorm:"default:true;index"`
	PostedByID uint64              `gorm:"index;not null"` // 创建时写入，之后不再变更
	CreatedAt  time.Time           `gorm:"index"`
	UpdatedAt  time.Time

	// 关联（用于查询 preload/join）
	PostedBy AdminUser `gorm:"foreignKey:PostedByID"`
}

func (Notice) TableName() string {
	return prefix + "notice"
}

// Achievement 成果展示表（获奖/比赛成绩等，带图片与团队信息）
type Achievement struct {
	ID              uint64                   `gorm:"primarykey"`
	Title           string                   `gorm:"size:200;not null"`
	Category        cons.AchievementCategory `gorm:"size:32;index;not null"`
	Description     string                   `gorm:"type:text;not null"`
	Date            time.Time                `gorm:"index;not null"` // 成果取得日期
	Images          datatypes.JSON           `gorm:"type:json"`      // [{name,key,url,size,type}]（对象存储元数据）
	Team            datatypes.JSON           `gorm:"type:json"`      // 成员名单 ["a","b"]
	Highlights      datatypes.JSON           `gorm:"type:json"`      // 亮点/奖项 ["一等奖"]
	Link            datatypes.JSON           `gorm:"type:json"`      // {url,text}，可选外链
	IsRecent        bool                     `gorm:"default:false;index"` // 首页"近期成果"位
	DisplayPriority int                      `gorm:"default:0"`           // 展示排序权重
	Status          cons.AchievementStatus   `gorm:"size:16;index;default:active"`
	PostedByID      uint64                   `gorm:"index;not null"`
	ExpiresAt       time.Time                // 默认创建时间 +30 天
	IsActive        bool                     `gorm:"default:true;index"`
	CreatedAt       time.Time                `gorm:"index"`
	UpdatedAt       time.Time

	// 关联关系
	PostedBy AdminUser `gorm:"foreignKey:PostedByID"`
}

func (Achievement) TableName() string {
	return prefix + "achievement"
}

// Contact 联系人目录表（对外展示的师生联系方式）
type Contact struct {
	ID           uint64               `gorm:"primarykey"`
	Name         string               `gorm:"size:100;not null"`
	Position     string               `gorm:"size:100;not null"`
	Category     cons.ContactCategory `gorm:"size:32;index;not null"`
	Club         string               `gorm:"size:100"` // category=club_secretary 时必填
	Department   string               `gorm:"size:100"` // category=faculty 时必填
	Email        string               `gorm:"size:100;uniqueIndex;not null"`
	Phone        string               `gorm:"size:20;not null"`
	Image        string               `gorm:"size:500;default:'/avatar.png'"`
	DisplayOrder int                  `gorm:"default:0;index"` // 目录内排序
	SocialLinks  datatypes.JSON       `gorm:"type:json"`       // {linkedin,twitter,instagram}
	IsActive     bool                 `gorm:"default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Contact) TableName() string {
	return prefix + "contact"
}
