package database

import (
	"path/filepath"
	"testing"

	"github.com/work-suite-api/internal/config"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrate_SQLiteCreatesSchema(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), gormlogger.Silent)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := Migrate(db, config.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"categories", "employees", "clients", "projects", "tasks", "task_assignments", "notifications", "clock_records"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %s to exist", table)
		}
	}

	// повторный запуск ничего не меняет
	if err := Migrate(db, config.DriverSQLite); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestMigrate_SQLiteEnforcesAssignmentKey(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), gormlogger.Silent)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := Migrate(db, config.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	stmts := []string{
		`INSERT INTO employees (name, email) VALUES ('Ann', 'ann@example.com')`,
		`INSERT INTO projects (title, status) VALUES ('P', 'In Progress')`,
		`INSERT INTO tasks (description, deadline, status, project_id) VALUES ('T', '2025-06-01 10:00:00', 'pending', 1)`,
		`INSERT INTO task_assignments (task_id, employee_id) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	if err := db.Exec(`INSERT INTO task_assignments (task_id, employee_id) VALUES (1, 1)`).Error; err == nil {
		t.Error("expected duplicate assignment to be rejected")
	}
	if err := db.Exec(`INSERT INTO task_assignments (task_id, employee_id) VALUES (1, 42)`).Error; err == nil {
		t.Error("expected assignment to unknown employee to be rejected")
	}
	if err := db.Exec(`INSERT INTO tasks (description, deadline, status, project_id) VALUES ('T', '2025-06-01', 'done', 1)`).Error; err == nil {
		t.Error("expected non-canonical task status to be rejected")
	}
}
