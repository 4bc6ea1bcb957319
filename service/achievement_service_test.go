package service

import (
	"errors"
	"testing"
	"time"

	"github.com/cydxin/sac-cms/cons"
)

func TestCreateAchievementReq_ApplyDefaults(t *testing.T) {
	now := time.Now()

	var req CreateAchievementReq
	req.ApplyDefaults(now)

	if req.Status != cons.AchievementStatusActive {
		t.Fatalf("expected default status active, got %s", req.Status)
	}
	if req.IsActive == nil || !*req.IsActive {
		t.Fatalf("expected default isActive true")
	}
	if req.ExpiresAt == nil {
		t.Fatalf("expected default expiresAt")
	}
	if got, want := *req.ExpiresAt, now.Add(30*24*time.Hour); !got.Equal(want) {
		t.Fatalf("expected expiresAt=now+30d, got %v want %v", got, want)
	}

	// 显式值不被覆盖
	exp := now.Add(time.Hour)
	archived := cons.AchievementStatusArchived
	req = CreateAchievementReq{Status: archived, ExpiresAt: &exp}
	req.ApplyDefaults(now)
	if req.Status != archived || !req.ExpiresAt.Equal(exp) {
		t.Fatalf("explicit values must be kept: %+v", req)
	}
}

func TestValidateNewAchievement(t *testing.T) {
	now := time.Now()

	valid := CreateAchievementReq{
		Title:       "Smart India Hackathon Winner",
		Category:    cons.AchievementCategoryTechnical,
		Description: "First place in the national finale.",
		Date:        now.AddDate(0, -1, 0),
	}
	valid.ApplyDefaults(now)
	if err := ValidateNewAchievement(valid); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	var req CreateAchievementReq
	req.ApplyDefaults(now)
	err := ValidateNewAchievement(req)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "Missing required fields: title, category, description, date" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}

	bad := valid
	bad.Category = "Gaming"
	if err := ValidateNewAchievement(bad); err == nil || err.Error() != "Invalid category" {
		t.Fatalf("expected Invalid category, got %v", err)
	}

	bad = valid
	bad.Status = "draft"
	if err := ValidateNewAchievement(bad); err == nil || err.Error() != "Invalid status" {
		t.Fatalf("expected Invalid status, got %v", err)
	}
}

func TestAchievementService_WriteOpsRequireSuperadmin(t *testing.T) {
	as := NewAchievementService(&Service{})
	actor := Actor{ID: 2, Role: cons.RoleAdmin}

	if _, err := as.Create(actor, CreateAchievementReq{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Create: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := as.Update(actor, 1, UpdateAchievementReq{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Update: expected ErrPermissionDenied, got %v", err)
	}
	if err := as.Delete(actor, 1); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Delete: expected ErrPermissionDenied, got %v", err)
	}
}
