package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestTokenService_StoreAndGet(t *testing.T) {
	svc := NewTokenService(newTestRedis(t))
	ctx := context.Background()

	token, err := svc.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if len(token) != 64 { // 32 字节 hex
		t.Fatalf("unexpected token length %d", len(token))
	}

	if err := svc.StoreToken(ctx, token, 42, time.Hour); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}

	adminID, err := svc.GetAdminIDByToken(ctx, token)
	if err != nil {
		t.Fatalf("GetAdminIDByToken: %v", err)
	}
	if adminID != 42 {
		t.Fatalf("expected adminID 42, got %d", adminID)
	}

	tokens, err := svc.ListAdminTokens(ctx, 42)
	if err != nil {
		t.Fatalf("ListAdminTokens: %v", err)
	}
	if len(tokens) != 1 || tokens[0] != token {
		t.Fatalf("unexpected token set: %v", tokens)
	}
}

func TestTokenService_RevokeAllTokensByAdmin(t *testing.T) {
	svc := NewTokenService(newTestRedis(t))
	ctx := context.Background()

	// 同一管理员多端登录
	var tokens []string
	for i := 0; i < 3; i++ {
		tk, err := svc.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if err := svc.StoreToken(ctx, tk, 7, time.Hour); err != nil {
			t.Fatalf("StoreToken: %v", err)
		}
		tokens = append(tokens, tk)
	}

	if err := svc.RevokeAllTokensByAdmin(ctx, 7); err != nil {
		t.Fatalf("RevokeAllTokensByAdmin: %v", err)
	}

	for _, tk := range tokens {
		if _, err := svc.GetAdminIDByToken(ctx, tk); err != redis.Nil {
			t.Fatalf("token %s should be gone, got err=%v", tk, err)
		}
	}

	// 再次全端注销应当是幂等的
	if err := svc.RevokeAllTokensByAdmin(ctx, 7); err != nil {
		t.Fatalf("second RevokeAllTokensByAdmin: %v", err)
	}
}

func TestTokenService_NilRedis(t *testing.T) {
	svc := NewTokenService(nil)
	ctx := context.Background()

	if err := svc.StoreToken(ctx, "x", 1, time.Hour); err == nil {
		t.Fatalf("expected error with nil redis")
	}
	if _, err := svc.GetAdminIDByToken(ctx, "x"); err == nil {
		t.Fatalf("expected error with nil redis")
	}
}
