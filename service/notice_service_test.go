package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cydxin/sac-cms/cons"
)

func TestNoticeService_WriteOpsRequireSuperadmin(t *testing.T) {
	// 角色闸门在任何库访问之前判定，所以这里不需要 mock 任何 SQL
	ns := NewNoticeService(&Service{})
	actor := Actor{ID: 7, Role: cons.RoleAdmin}

	if _, err := ns.Create(actor, CreateNoticeReq{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Create: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := ns.Update(actor, 1, UpdateNoticeReq{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Update: expected ErrPermissionDenied, got %v", err)
	}
	if err := ns.Delete(actor, 1); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Delete: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := ns.List(actor, ListNoticesReq{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("List: expected ErrPermissionDenied, got %v", err)
	}
}

func TestNoticeService_Create_RoundTrip(t *testing.T) {
	gormDB, mock := newMockDB(t)

	ns := NewNoticeService(&Service{DB: gormDB, TablePrefix: "sac_"})
	now := time.Now()
	expires := now.Add(48 * time.Hour)

	mock.ExpectExec("INSERT INTO `sac_notice`").
		WillReturnResult(sqlmock.NewResult(11, 1))

	// 落库后回读，带出署名
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sac_notice` WHERE id = ? ORDER BY `sac_notice`.`id` LIMIT ?")).
		WithArgs(uint64(11), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "category", "priority", "venue", "expires_at", "is_active", "posted_by_id", "created_at", "updated_at"}).
			AddRow(uint64(11), "Hack Day", "24h build sprint", "technical", "medium", "", expires, true, uint64(9), now, now))

	mock.ExpectQuery("SELECT \\* FROM `sac_admin_user` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "username", "name", "password", "role", "is_active", "last_login_at", "created_at", "updated_at", "deleted_at"}).
			AddRow(uint64(9), "u9", "root", "SAC Office", "hash", "superadmin", true, nil, now, now, nil))

	dto, err := ns.Create(Actor{ID: 9, Role: cons.RoleSuperadmin}, CreateNoticeReq{
		Title:     "Hack Day",
		Content:   "24h build sprint",
		Category:  cons.NoticeCategoryTechnical,
		Priority:  cons.NoticePriorityMedium,
		ExpiresAt: expires,
		// isActive 不传，应当默认 true
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 署名必须是操作者本人
	if dto.PostedBy.ID != 9 {
		t.Fatalf("expected postedBy.id=9, got %d", dto.PostedBy.ID)
	}
	if dto.PostedBy.Name != "SAC Office" || dto.PostedBy.Role != "superadmin" {
		t.Fatalf("postedBy not populated: %+v", dto.PostedBy)
	}
	if !dto.IsActive {
		t.Fatalf("expected isActive default true")
	}
	if dto.ID != 11 || dto.Title != "Hack Day" {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestNoticeService_ListPublic_FiltersActiveAndPaginates(t *testing.T) {
	gormDB, mock := newMockDB(t)

	ns := NewNoticeService(&Service{DB: gormDB, TablePrefix: "sac_"})

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_notice` WHERE is_active = ?")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(25))

	rows := sqlmock.NewRows([]string{"id", "title", "content", "category", "priority", "venue", "expires_at", "is_active", "posted_by_id", "created_at", "updated_at"}).
		AddRow(uint64(11), "Tech Fest", "register now", "technical", "high", "Main Auditorium", now.Add(72*time.Hour), true, uint64(1), now, now)

	// 第二页：GORM 生成 LIMIT ? OFFSET ?
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sac_notice` WHERE is_active = ? ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs(true, 10, 10).
		WillReturnRows(rows)

	// 署名 Preload
	mock.ExpectQuery("SELECT \\* FROM `sac_admin_user` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "username", "name", "password", "role", "is_active", "last_login_at", "created_at", "updated_at", "deleted_at"}).
			AddRow(uint64(1), "u1", "root", "SAC Office", "hash", "superadmin", true, nil, now, now, nil))

	resp, err := ns.ListPublic(ListNoticesReq{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}

	if resp.Pagination.Total != 25 || resp.Pagination.Page != 2 || resp.Pagination.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Pagination.Pages != 3 {
		t.Fatalf("expected pages=3 for total=25 limit=10, got %d", resp.Pagination.Pages)
	}
	if len(resp.Notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(resp.Notices))
	}
	if resp.Notices[0].PostedBy.Name != "SAC Office" || resp.Notices[0].PostedBy.Role != "superadmin" {
		t.Fatalf("postedBy not populated: %+v", resp.Notices[0].PostedBy)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestNoticeService_ListPublic_SearchMatchesTitleOrContent(t *testing.T) {
	gormDB, mock := newMockDB(t)

	ns := NewNoticeService(&Service{DB: gormDB, TablePrefix: "sac_"})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_notice` WHERE (title LIKE ? OR content LIKE ?) AND category = ? AND is_active = ?")).
		WithArgs("%fest%", "%fest%", "technical", true).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	// 第一页 offset 为 0，GORM 不生成 OFFSET 子句
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sac_notice` WHERE (title LIKE ? OR content LIKE ?) AND category = ? AND is_active = ? ORDER BY created_at DESC LIMIT ?")).
		WithArgs("%fest%", "%fest%", "technical", true, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := ns.ListPublic(ListNoticesReq{Search: "fest", Category: cons.NoticeCategoryTechnical})
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if resp.Pagination.Total != 0 || resp.Pagination.Pages != 0 {
		t.Fatalf("expected empty result, got %+v", resp.Pagination)
	}
	if resp.Notices == nil || len(resp.Notices) != 0 {
		t.Fatalf("notices must be empty slice, got %#v", resp.Notices)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestNoticeService_Delete_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)

	ns := NewNoticeService(&Service{DB: gormDB, TablePrefix: "sac_"})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_notice` WHERE id = ?")).
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := ns.Delete(Actor{ID: 1, Role: cons.RoleSuperadmin}, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestNoticeService_Update_NeverTouchesPostedBy(t *testing.T) {
	gormDB, mock := newMockDB(t)

	ns := NewNoticeService(&Service{DB: gormDB, TablePrefix: "sac_"})
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_notice` WHERE id = ?")).
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	// 只提交了 is_active：UPDATE 语句只能出现 is_active 和 updated_at 两列
	mock.ExpectExec("UPDATE `sac_notice` SET `is_active`=\\?,`updated_at`=\\? WHERE id = \\?").
		WithArgs(false, sqlmock.AnyArg(), uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sac_notice` WHERE id = ? ORDER BY `sac_notice`.`id` LIMIT ?")).
		WithArgs(uint64(11), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "category", "priority", "venue", "expires_at", "is_active", "posted_by_id", "created_at", "updated_at"}).
			AddRow(uint64(11), "Tech Fest", "register now", "technical", "high", "", now.Add(time.Hour), false, uint64(1), now, now))

	mock.ExpectQuery("SELECT \\* FROM `sac_admin_user` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "username", "name", "password", "role", "is_active", "last_login_at", "created_at", "updated_at", "deleted_at"}).
			AddRow(uint64(1), "u1", "root", "SAC Office", "hash", "superadmin", true, nil, now, now, nil))

	inactive := false
	dto, err := ns.Update(Actor{ID: 99, Role: cons.RoleSuperadmin}, 11, UpdateNoticeReq{IsActive: &inactive})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.IsActive {
		t.Fatalf("expected isActive=false after update")
	}
	// 署名仍然是创建者，而不是本次操作者
	if dto.PostedBy.ID != 1 {
		t.Fatalf("postedBy must not change, got %d", dto.PostedBy.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
