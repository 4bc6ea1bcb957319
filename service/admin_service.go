package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cydxin/sac-cms/cons"
	"github.com/cydxin/sac-cms/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService 后台管理员账号相关：登录/登出、角色解析、改密码、初始账号。
type AdminService struct {
	*Service
	adminDao      *models.AdminUserDAO
	tokenService  *TokenService
	loginTokenTTL time.Duration
}

func NewAdminService(s *Service) *AdminService {
	return &AdminService{
		Service:       s,
		adminDao:      models.NewAdminUserDAO(s.DB),
		tokenService:  NewTokenService(s.RDB),
		loginTokenTTL: 24 * time.Hour,
	}
}

// --- types ---

type AdminDTO struct {
	ID          uint64     `json:"id"`
	UID         string     `json:"uid"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

type UpdatePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func toAdminDTO(u *models.AdminUser) *AdminDTO {
	if u == nil {
		return nil
	}
	return &AdminDTO{
		ID:          u.ID,
		UID:         u.UID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// --- operations ---

// LoginWithToken 账号密码登录，成功后生成 token 写入 Redis 并刷新最后登录时间。
// 账号不存在/已停用/密码错误统一返回 ErrInvalidCredentials，不泄露具体原因。
func (s *AdminService) LoginWithToken(ctx context.Context, req LoginReq) (*LoginResp, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, newMissingFieldsError(missing)
	}

	admin, err := s.adminDao.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}
	if err := s.tokenService.StoreToken(ctx, token, admin.ID, s.loginTokenTTL); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.adminDao.TouchLastLogin(admin.ID, now); err != nil {
		return nil, err
	}
	admin.LastLoginAt = &now

	return &LoginResp{Token: token, Admin: *toAdminDTO(admin)}, nil
}

// GetAdmin 查询管理员资料。
func (s *AdminService) GetAdmin(id uint64) (*AdminDTO, error) {
	admin, err := s.adminDao.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toAdminDTO(admin), nil
}

// ResolveActor 把鉴权层给出的 adminID 解析为显式的 Actor（id + 角色）。
// 账号已被删除或停用时视为凭证失效（401 语义），而不是权限不足。
func (s *AdminService) ResolveActor(adminID uint64) (Actor, error) {
	admin, err := s.adminDao.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Actor{}, ErrUnauthenticated
		}
		return Actor{}, err
	}
	if !admin.IsActive {
		return Actor{}, ErrUnauthenticated
	}
	return Actor{ID: admin.ID, Role: admin.Role}, nil
}

// RequireRole 解析 Actor 并要求角色完全匹配，否则 ErrPermissionDenied（403 语义）。
func (s *AdminService) RequireRole(adminID uint64, role string) (Actor, error) {
	actor, err := s.ResolveActor(adminID)
	if err != nil {
		return Actor{}, err
	}
	if actor.Role != role {
		return Actor{}, ErrPermissionDenied
	}
	return actor, nil
}

// UpdatePassword 改密码：校验旧密码，写入新 hash，并注销全部会话。
func (s *AdminService) UpdatePassword(ctx context.Context, adminID uint64, req UpdatePasswordReq) error {
	oldPwd := strings.TrimSpace(req.OldPassword)
	newPwd := strings.TrimSpace(req.NewPassword)
	var missing []string
	if oldPwd == "" {
		missing = append(missing, "old_password")
	}
	if newPwd == "" {
		missing = append(missing, "new_password")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	admin, err := s.adminDao.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(oldPwd)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.adminDao.UpdatePassword(adminID, string(hash)); err != nil {
		return err
	}
	// 改密码后踢掉所有已登录会话
	return s.tokenService.RevokeAllTokensByAdmin(ctx, adminID)
}

// EnsureSuperadmin 初始部署时保证存在一个 superadmin 账号。
// 已存在同名账号则什么都不做（不覆盖密码）。
func (s *AdminService) EnsureSuperadmin(username, password, name string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return errors.New("superadmin username and password are required")
	}

	exists, err := s.adminDao.ExistsByUsername(username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if name == "" {
		name = username
	}
	now := time.Now()
	return s.adminDao.Create(&models.AdminUser{
		UID:       uuid.New().String(),
		Username:  username,
		Name:      name,
		Password:  string(hash),
		Role:      cons.RoleSuperadmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
