package cons

// 管理员角色。公告/成果/联系人等写操作只开放给 superadmin。
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)
