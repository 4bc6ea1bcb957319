package main

import (
	"os"
	"strings"

	"github.com/cydxin/sac-cms"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var log = logrus.New()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func initLogger() {
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(envOr("LOG_LEVEL", "info")))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(envOr("APP_ENV", "development")) == "production" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

func main() {
	// .env 里的值不会覆盖已有环境变量，文件不存在时忽略
	_ = godotenv.Load()
	initLogger()

	// 1. 初始化数据库连接
	dsn := envOr("MYSQL_DSN",
		"root:password@tcp(127.0.0.1:3306)/sac_db?charset=utf8mb4&parseTime=True&loc=Local")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("数据库连接失败")
	}

	// 2. 初始化 Redis（Token 认证依赖）
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "127.0.0.1:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	// 3. 初始化 CMS Engine（单例模式，全局只需调用一次）
	engine := sac_cms.NewEngine(
		sac_cms.WithDB(db),
		sac_cms.WithRDB(rdb),
		sac_cms.WithTablePrefix("sac_"),
		sac_cms.WithServiceDebug(envOr("APP_ENV", "development") != "production"),
	)

	// 4. 初始管理员（存在则跳过）
	if username := os.Getenv("SUPERADMIN_USERNAME"); username != "" {
		err := engine.AdminService.EnsureSuperadmin(
			username,
			os.Getenv("SUPERADMIN_PASSWORD"),
			envOr("SUPERADMIN_NAME", "Administrator"),
		)
		if err != nil {
			log.WithError(err).Fatal("初始化超级管理员失败")
		}
	}

	// 5. 创建 Gin 路由
	r := gin.Default()

	// 设置 CORS（如果需要）
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 注册 Swagger UI
	sac_cms.RegisterSwagger(r, "/swagger/*any")

	// 6. API 路由组
	api := r.Group("/api/v1")

	// 公开接口（展示页直接读，无需登录）
	{
		api.GET("/notices", engine.GinHandlePublicListNotices)
		api.GET("/achievements", engine.GinHandlePublicListAchievements)
		api.GET("/achievements/recent", engine.GinHandleRecentAchievements)
		api.GET("/achievements/stats", engine.GinHandleAchievementStats)
		api.GET("/contacts", engine.GinHandlePublicListContacts)
	}

	// 管理员会话
	adminAPI := api.Group("/admin")
	{
		adminAPI.POST("/login", engine.GinHandleAdminLogin)

		authed := adminAPI.Group("", engine.GinAuthMiddleware(nil))
		authed.POST("/logout", engine.GinHandleAdminLogout)
		authed.GET("/me", engine.GinHandleAdminMe)
		authed.PUT("/password", engine.GinHandleAdminUpdatePassword)
	}

	// 超级管理员内容管理
	superAPI := api.Group("/superadmin",
		engine.GinAuthMiddleware(nil),
		engine.GinSuperadminMiddleware(nil),
	)
	{
		superAPI.GET("/notices", engine.GinHandleListNotices)
		superAPI.POST("/notices", engine.GinHandleCreateNotice)
		superAPI.GET("/notices/:id", engine.GinHandleGetNotice)
		superAPI.PUT("/notices/:id", engine.GinHandleUpdateNotice)
		superAPI.DELETE("/notices/:id", engine.GinHandleDeleteNotice)

		superAPI.GET("/achievements", engine.GinHandleListAchievements)
		superAPI.POST("/achievements", engine.GinHandleCreateAchievement)
		superAPI.GET("/achievements/:id", engine.GinHandleGetAchievement)
		superAPI.PUT("/achievements/:id", engine.GinHandleUpdateAchievement)
		superAPI.DELETE("/achievements/:id", engine.GinHandleDeleteAchievement)

		superAPI.GET("/contacts", engine.GinHandleListContacts)
		superAPI.POST("/contacts", engine.GinHandleCreateContact)
		superAPI.PUT("/contacts/:id", engine.GinHandleUpdateContact)
		superAPI.DELETE("/contacts/:id", engine.GinHandleDeleteContact)
	}

	// 7. 启动服务
	addr := envOr("LISTEN_ADDR", ":6789")
	log.WithField("addr", addr).Info("SAC CMS 启动")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("服务退出")
	}
}
