package cons

// 成果展示分类（闭集）。注意与公告分类不同，这里沿用展示页的大写风格。
type AchievementCategory string

const (
	AchievementCategoryTechnical AchievementCategory = "Technical"
	AchievementCategoryCultural  AchievementCategory = "Cultural"
	AchievementCategorySports    AchievementCategory = "Sports"
	AchievementCategoryAcademic  AchievementCategory = "Academic"
	AchievementCategoryOther     AchievementCategory = "Other"
)

var achievementCategories = []AchievementCategory{
	AchievementCategoryTechnical,
	AchievementCategoryCultural,
	AchievementCategorySports,
	AchievementCategoryAcademic,
	AchievementCategoryOther,
}

// AchievementCategories 返回全部合法分类。
func AchievementCategories() []AchievementCategory {
	out := make([]AchievementCategory, len(achievementCategories))
	copy(out, achievementCategories)
	return out
}

func (c AchievementCategory) Valid() bool {
	for _, v := range achievementCategories {
		if c == v {
			return true
		}
	}
	return false
}

// 成果展示状态：active 对外可见，archived 仅后台保留。
type AchievementStatus string

const (
	AchievementStatusActive   AchievementStatus = "active"
	AchievementStatusArchived AchievementStatus = "archived"
)

func (s AchievementStatus) Valid() bool {
	return s == AchievementStatusActive || s == AchievementStatusArchived
}
