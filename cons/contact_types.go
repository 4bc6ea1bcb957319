package cons

// 联系人目录分类（闭集）
type ContactCategory string

const (
	ContactCategoryFaculty         ContactCategory = "faculty"          // 指导老师
	ContactCategoryClubSecretary   ContactCategory = "club_secretary"   // 社团负责人
	ContactCategoryPORHolder       ContactCategory = "por_holder"       // 学生职务
	ContactCategoryCommitteeMember ContactCategory = "committee_member" // 委员会成员
)

var contactCategories = []ContactCategory{
	ContactCategoryFaculty,
	ContactCategoryClubSecretary,
	ContactCategoryPORHolder,
	ContactCategoryCommitteeMember,
}

// ContactCategories 返回全部合法分类。
func ContactCategories() []ContactCategory {
	out := make([]ContactCategory, len(contactCategories))
	copy(out, contactCategories)
	return out
}

func (c ContactCategory) Valid() bool {
	for _, v := range contactCategories {
		if c == v {
			return true
		}
	}
	return false
}
