package sac_cms

import (
	"fmt"
	"log"

	"github.com/cydxin/sac-cms/cons"
	"gorm.io/gorm"
)

// MigrateLegacyNoticeEnums 规范历史公告数据里的 category/priority 值。
// 旧版内容库没有枚举约束，存过大小写混排和同义写法（"Club Activities"、
// "normal" 等）。迁移策略：
// 1. 全部转小写
// 2. 按同义词表归一
// 3. 仍不在枚举内的记录直接下线（is_active=false），等人工处理
//
// 幂等，可重复执行。
func (c *CmsEngine) MigrateLegacyNoticeEnums() error {
	db := c.config.DB
	tableName := c.config.TablePrefix + "notice" // 使用配置的表前缀

	log.Printf("开始规范 %s 表的枚举列...", tableName)

	// 检查表是否存在
	if !db.Migrator().HasTable(tableName) {
		log.Printf("表 %s 不存在，跳过迁移", tableName)
		return nil
	}

	// 验证表名格式（只允许字母、数字和下划线）
	if !isValidTableName(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}

	categoryAliases := map[string]cons.NoticeCategory{
		"club activities": cons.NoticeCategoryClubActivities,
		"club-activities": cons.NoticeCategoryClubActivities,
		"competition":     cons.NoticeCategoryCompetitions,
		"event":           cons.NoticeCategoryEvents,
		"tech":            cons.NoticeCategoryTechnical,
	}
	priorityAliases := map[string]cons.NoticePriority{
		"normal":   cons.NoticePriorityMedium,
		"critical": cons.NoticePriorityUrgent,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 1. 统一小写
		if err := tx.Table(tableName).
			Where("BINARY category <> LOWER(category)").
			Update("category", gorm.Expr("LOWER(category)")).Error; err != nil {
			return fmt.Errorf("小写归一失败: %v", err)
		}
		if err := tx.Table(tableName).
			Where("BINARY priority <> LOWER(priority)").
			Update("priority", gorm.Expr("LOWER(priority)")).Error; err != nil {
			return fmt.Errorf("小写归一失败: %v", err)
		}

		// 2. 同义词归一
		for alias, canonical := range categoryAliases {
			if err := tx.Table(tableName).
				Where("category = ?", alias).
				Update("category", canonical).Error; err != nil {
				return fmt.Errorf("category 归一失败 (%s): %v", alias, err)
			}
		}
		for alias, canonical := range priorityAliases {
			if err := tx.Table(tableName).
				Where("priority = ?", alias).
				Update("priority", canonical).Error; err != nil {
				return fmt.Errorf("priority 归一失败 (%s): %v", alias, err)
			}
		}

		// 3. 枚举外的历史数据下线
		res := tx.Table(tableName).
			Where("category NOT IN ? OR priority NOT IN ?",
				cons.NoticeCategories(), cons.NoticePriorities()).
			Update("is_active", false)
		if res.Error != nil {
			return fmt.Errorf("下线非法枚举记录失败: %v", res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("下线了 %d 条枚举值非法的历史公告", res.RowsAffected)
		}

		log.Println("枚举规范完成")
		return nil
	})
}

// isValidTableName 验证表名格式，防止 SQL 注入
func isValidTableName(name string) bool {
	// 只允许字母、数字和下划线
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return len(name) > 0 && len(name) < 64 // MySQL 表名最大 64 字符
}
