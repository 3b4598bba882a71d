package testfixtures

import (
	"path/filepath"
	"testing"

	"github.com/work-suite-api/internal/config"
	"github.com/work-suite-api/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB открывает мигрированную SQLite во временном каталоге теста.
// Соединение закрывается через tb.Cleanup.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "work_suite.db")

	db, err := database.OpenSQLite(path, gormlogger.Silent)
	if err != nil {
		tb.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db, config.DriverSQLite); err != nil {
		tb.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
