package sac_cms

import (
	"log"
	"sync"

	"github.com/cydxin/sac-cms/middleware"
	model "github.com/cydxin/sac-cms/models"
	"github.com/cydxin/sac-cms/service"
	"github.com/gin-gonic/gin"
)

type CmsEngine struct {
	config *Config

	AdminService       *service.AdminService
	NoticeService      *service.NoticeService
	AchievementService *service.AchievementService
	ContactService     *service.ContactService
	AuthService        *service.AuthService // 鉴权服务
}

var (
	Instance *CmsEngine
	once     sync.Once
)

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *CmsEngine {
	once.Do(func() {
		c := &Config{
			TablePrefix: "sac_", // Default
		}
		for _, opt := range opts {
			opt(c)
		}

		Instance = &CmsEngine{config: c}

		// 初始化基础 Service
		baseService := &service.Service{
			DB:          c.DB,
			RDB:         c.RDB,
			TablePrefix: c.TablePrefix,
			Debug:       c.Service.Debug,
		}

		// 初始化各个 Service
		Instance.AdminService = service.NewAdminService(baseService)
		Instance.NoticeService = service.NewNoticeService(baseService)
		Instance.AchievementService = service.NewAchievementService(baseService)
		Instance.ContactService = service.NewContactService(baseService)
		Instance.AuthService = service.NewAuthService(c.RDB) // 初始化鉴权服务

		// 迁移表
		if err := Instance.AutoMigrate(); err != nil {
			log.Printf("AutoMigrate failed: %v", err)
		}
	})

	return Instance
}

func (c *CmsEngine) AutoMigrate() error {
	db := c.config.DB
	log.Println("AutoMigrate...")
	return db.AutoMigrate(
		&model.AdminUser{},
		&model.Notice{},
		&model.Achievement{},
		&model.Contact{},
	)
}

// GinAuthMiddleware 返回配置好的 Gin 鉴权中间件
// 使用 CmsEngine 内部的 AuthService 和 Redis 配置
//
// 使用示例:
//
//	engine := sac_cms.NewEngine(...)
//	r := gin.Default()
//	admin := r.Group("/api/v1/superadmin")
//	admin.Use(engine.GinAuthMiddleware(nil))       // 401: 你是谁
//	admin.Use(engine.GinSuperadminMiddleware(nil)) // 403: 你能不能改
func (c *CmsEngine) GinAuthMiddleware(opt *middleware.AuthOptions) gin.HandlerFunc {
	return middleware.GinAuthMiddleware(c.AuthService, opt)
}

// GinSuperadminMiddleware 返回配置好的角色闸门中间件（需挂在鉴权之后）。
func (c *CmsEngine) GinSuperadminMiddleware(opt *middleware.AuthOptions) gin.HandlerFunc {
	return middleware.GinSuperadminMiddleware(c.AdminService, opt)
}
