package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB 返回接在 go-sqlmock 上的 *gorm.DB，测试 service 层的 SQL 形状。
// 选 mysql dialector 是为了固定 ? 占位符和反引号风格，不会真的连库；
// SkipDefaultTransaction 关掉 GORM 写操作的隐式事务，断言里就不用 ExpectBegin/Commit。
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqldb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock
}
