package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestAuthService_ExtractToken_BearerFirst(t *testing.T) {
	a := NewAuthService(nil)

	req := &http.Request{Header: make(http.Header), URL: &url.URL{RawQuery: "token=q"}}
	req.Header.Set("Authorization", "Bearer headerToken")

	got := a.ExtractToken(req)
	if got != "headerToken" {
		t.Fatalf("expected headerToken, got %q", got)
	}
}

func TestAuthService_ExtractToken_QueryFallback(t *testing.T) {
	a := NewAuthService(nil)

	u, _ := url.Parse("http://example.com/path?token=queryToken")
	req := &http.Request{Header: make(http.Header), URL: u}

	got := a.ExtractToken(req)
	if got != "queryToken" {
		t.Fatalf("expected queryToken, got %q", got)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	rdb := newTestRedis(t)
	a := NewAuthService(rdb)
	ctx := context.Background()

	// 缺 token
	if _, err := a.Authenticate(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("empty token: expected ErrUnauthenticated, got %v", err)
	}

	// token 不存在
	if _, err := a.Authenticate(ctx, "no-such-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("unknown token: expected ErrUnauthenticated, got %v", err)
	}

	// 正常 token
	ts := NewTokenService(rdb)
	token, err := ts.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if err := ts.StoreToken(ctx, token, 9, time.Hour); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}

	adminID, err := a.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if adminID != 9 {
		t.Fatalf("expected adminID 9, got %d", adminID)
	}
}

func TestAuthService_RevokeToken(t *testing.T) {
	rdb := newTestRedis(t)
	a := NewAuthService(rdb)
	ts := NewTokenService(rdb)
	ctx := context.Background()

	token, _ := ts.GenerateToken()
	if err := ts.StoreToken(ctx, token, 3, time.Hour); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}

	if err := a.RevokeToken(ctx, token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if _, err := a.Authenticate(ctx, token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("revoked token must be unauthenticated, got %v", err)
	}

	// token 映射和集合都要被清理
	tokens, err := ts.ListAdminTokens(ctx, 3)
	if err != nil {
		t.Fatalf("ListAdminTokens: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("token set should be empty, got %v", tokens)
	}
}
