package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// AuthService 提供"鉴权核心能力"，供调用方自建中间件/拦截器使用。
// - 解析 token（Bearer 优先，其次 query）
// - 校验 token -> adminID（Redis），失败统一归为 ErrUnauthenticated
// - 注销 token / 注销管理员全部 token
//
// 角色校验不在这里做：鉴权只回答"你是谁"，"你能不能改"由
// AdminService.RequireRole / service 层的 Actor 判定回答。
type AuthService struct {
	token *TokenService
}

func NewAuthService(rdb *redis.Client) *AuthService {
	return &AuthService{token: NewTokenService(rdb)}
}

// ExtractToken 从 HTTP 请求中提取 token：优先 Authorization: Bearer，其次 query: token。
func (a *AuthService) ExtractToken(r *http.Request) string {
	if r == nil {
		return ""
	}

	// Authorization: Bearer <token>
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah != "" {
		parts := strings.SplitN(ah, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	// query: ?token=xxx
	q := r.URL.Query().Get("token")
	return strings.TrimSpace(q)
}

// Authenticate 根据 token 获取 adminID。
// 缺 token/过期/不存在一律返回 ErrUnauthenticated（401 语义）。
func (a *AuthService) Authenticate(ctx context.Context, token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrUnauthenticated
	}
	adminID, err := a.token.GetAdminIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrUnauthenticated
		}
		return 0, err
	}
	return adminID, nil
}

// AuthenticateRequest 从请求里抽 token 并鉴权。
func (a *AuthService) AuthenticateRequest(ctx context.Context, r *http.Request) (uint64, string, error) {
	t := a.ExtractToken(r)
	adminID, err := a.Authenticate(ctx, t)
	return adminID, t, err
}

// RevokeToken 注销单个 token（登出）。
func (a *AuthService) RevokeToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	adminID, err := a.token.GetAdminIDByToken(ctx, token)
	if err == nil {
		_ = a.token.RemoveAdminToken(ctx, adminID, token)
	}
	return a.token.RevokeToken(ctx, token)
}

// RevokeAllTokensByAdmin 注销管理员全部 token。
func (a *AuthService) RevokeAllTokensByAdmin(ctx context.Context, adminID uint64) error {
	return a.token.RevokeAllTokensByAdmin(ctx, adminID)
}

// RefreshTokenTTL 对 token 续期（可选能力，用于滑动过期）。
func (a *AuthService) RefreshTokenTTL(ctx context.Context, token string, ttl time.Duration) error {
	return a.token.RefreshTokenTTL(ctx, token, ttl)
}
