package service

import (
	"github.com/cydxin/sac-cms/cons"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Service 基础服务，包含数据库和配置
type Service struct {
	DB          *gorm.DB
	RDB         *redis.Client
	TablePrefix string

	// Debug 开启后公开接口也返回原始错误信息（默认只返回笼统提示）
	Debug bool
}

// Table 获取带前缀的表名
func (s *Service) Table(name string) *gorm.DB {
	return s.DB.Table(name)
}

// Actor 当前操作者。由鉴权层解析后显式传入每个写操作，
// service 层不读任何全局登录态。
type Actor struct {
	ID   uint64
	Role string
}

func (a Actor) IsSuperadmin() bool {
	return a.Role == cons.RoleSuperadmin
}
