package testhelper

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewTestDB: in-memory SQLite 기반 GORM 인스턴스를 생성합니다.
// 단일 커넥션으로 제한해 :memory: DB가 커넥션마다 초기화되는 문제를 방지합니다.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
