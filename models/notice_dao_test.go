package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cydxin/sac-cms/cons"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	return db, mock
}

// TestNoticeDAO_Query 验证过滤条件的拼接：搜索同时命中标题和正文，
// 零值过滤字段不出现在 WHERE 里。
func TestNoticeDAO_Query(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewNoticeDAO(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `sac_notice` WHERE (title LIKE ? OR content LIKE ?) AND priority = ?")).
		WithArgs("%audit%", "%audit%", "urgent").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sac_notice` WHERE (title LIKE ? OR content LIKE ?) AND priority = ? ORDER BY created_at DESC LIMIT ?")).
		WithArgs("%audit%", "%audit%", "urgent", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "category", "priority", "venue", "expires_at", "is_active", "posted_by_id", "created_at", "updated_at"}).
			AddRow(uint64(3), "Auditorium closed", "audit in progress", "events", "urgent", "", now.Add(time.Hour), false, uint64(1), now, now))

	mock.ExpectQuery("SELECT \\* FROM `sac_admin_user` WHERE .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "username", "name", "password", "role", "is_active", "last_login_at", "created_at", "updated_at", "deleted_at"}).
			AddRow(uint64(1), "u1", "root", "SAC Office", "hash", "superadmin", true, nil, now, now, nil))

	rows, total, err := dao.Query(NoticeQuery{
		Search:   "audit",
		Priority: cons.NoticePriorityUrgent,
		Page:     1,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 row, got total=%d len=%d", total, len(rows))
	}
	if rows[0].PostedBy.Name != "SAC Office" {
		t.Fatalf("PostedBy not preloaded: %+v", rows[0].PostedBy)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestNoticeDAO_Update_EmptyFieldsIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewNoticeDAO(db)

	// 没有任何字段提交时不应产生 SQL
	if err := dao.Update(1, map[string]any{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
