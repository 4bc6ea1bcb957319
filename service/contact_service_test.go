package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cydxin/sac-cms/cons"
)

func validCreateContactReq() CreateContactReq {
	req := CreateContactReq{
		Name:     "Dr. A. Sharma",
		Position: "Faculty Advisor",
		Category: cons.ContactCategoryFaculty,

		Department: "Computer Science",
		Email:      "a.sharma@example.edu",
		Phone:      "+91-9876543210",
	}
	req.ApplyDefaults()
	return req
}

func TestValidateNewContact_ConditionalFields(t *testing.T) {
	// faculty 必须带 department
	req := validCreateContactReq()
	req.Department = ""
	err := ValidateNewContact(req)
	if err == nil || err.Error() != "Department is required for faculty" {
		t.Fatalf("expected department error, got %v", err)
	}

	// club_secretary 必须带 club
	req = validCreateContactReq()
	req.Category = cons.ContactCategoryClubSecretary
	req.Department = ""
	err = ValidateNewContact(req)
	if err == nil || err.Error() != "Club is required for club secretaries" {
		t.Fatalf("expected club error, got %v", err)
	}
	req.Club = "Robotics Club"
	if err := ValidateNewContact(req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	// por_holder 两者都不强制
	req = validCreateContactReq()
	req.Category = cons.ContactCategoryPORHolder
	req.Department = ""
	if err := ValidateNewContact(req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestCreateContactReq_ApplyDefaults(t *testing.T) {
	var req CreateContactReq
	req.ApplyDefaults()
	if req.Image != "/avatar.png" {
		t.Fatalf("expected default image /avatar.png, got %q", req.Image)
	}
	if req.IsActive == nil || !*req.IsActive {
		t.Fatalf("expected default isActive true")
	}
}

func TestContactService_Create_DuplicateEmail(t *testing.T) {
	gormDB, mock := newMockDB(t)

	cs := NewContactService(&Service{DB: gormDB, TablePrefix: "sac_"})

	// 邮箱统一小写后查重
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_contact` WHERE email = ?")).
		WithArgs("a.sharma@example.edu").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	req := validCreateContactReq()
	req.Email = "A.Sharma@Example.edu"

	_, err := cs.Create(Actor{ID: 1, Role: cons.RoleSuperadmin}, req)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "A contact with this email already exists" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestContactService_ListActive_UnknownCategoryIsEmpty(t *testing.T) {
	cs := NewContactService(&Service{})

	// 未知分类直接返回空列表，不查库也不报错
	items, err := cs.ListActive("alumni")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d", len(items))
	}
}
