package cons

// 公告分类（闭集）。持久化前必须通过 Valid 校验，禁止自由字符串入库。
type NoticeCategory string

const (
	NoticeCategoryCultural       NoticeCategory = "cultural"        // 文化活动
	NoticeCategorySports         NoticeCategory = "sports"          // 体育
	NoticeCategoryTechnical      NoticeCategory = "technical"       // 技术
	NoticeCategoryClubActivities NoticeCategory = "club_activities" // 社团活动
	NoticeCategoryCompetitions   NoticeCategory = "competitions"    // 竞赛
	NoticeCategoryEvents         NoticeCategory = "events"          // 其他活动
)

var noticeCategories = []NoticeCategory{
	NoticeCategoryCultural,
	NoticeCategorySports,
	NoticeCategoryTechnical,
	NoticeCategoryClubActivities,
	NoticeCategoryCompetitions,
	NoticeCategoryEvents,
}

// NoticeCategories 返回全部合法分类（顺序固定，前端下拉可直接用）。
func NoticeCategories() []NoticeCategory {
	out := make([]NoticeCategory, len(noticeCategories))
	copy(out, noticeCategories)
	return out
}

func (c NoticeCategory) Valid() bool {
	for _, v := range noticeCategories {
		if c == v {
			return true
		}
	}
	return false
}

// 公告优先级（闭集）
type NoticePriority string

const (
	NoticePriorityLow    NoticePriority = "low"
	NoticePriorityMedium NoticePriority = "medium"
	NoticePriorityHigh   NoticePriority = "high"
	NoticePriorityUrgent NoticePriority = "urgent"
)

var noticePriorities = []NoticePriority{
	NoticePriorityLow,
	NoticePriorityMedium,
	NoticePriorityHigh,
	NoticePriorityUrgent,
}

// NoticePriorities 返回全部合法优先级。
func NoticePriorities() []NoticePriority {
	out := make([]NoticePriority, len(noticePriorities))
	copy(out, noticePriorities)
	return out
}

func (p NoticePriority) Valid() bool {
	for _, v := range noticePriorities {
		if p == v {
			return true
		}
	}
	return false
}
