package testfixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// ReferenceTime - общее опорное время тестов
func ReferenceTime() time.Time {
	return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
}

// SeedCategory создаёт категорию сотрудников
func SeedCategory(tb testing.TB, db *gorm.DB, name string) *domain.Category {
	tb.Helper()
	c := &domain.Category{Name: name}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

// SeedEmployee создаёт сотрудника с уникальным email
func SeedEmployee(tb testing.TB, db *gorm.DB, name string) *domain.Employee {
	tb.Helper()
	var count int64
	db.Model(&domain.Employee{}).Count(&count)

	emp := &domain.Employee{
		Name:  name,
		Email: fmt.Sprintf("employee%d@example.com", count+1),
	}
	if err := db.Create(emp).Error; err != nil {
		tb.Fatalf("seed employee: %v", err)
	}
	return emp
}

// SeedClient создаёт заказчика
func SeedClient(tb testing.TB, db *gorm.DB, name string) *domain.Client {
	tb.Helper()
	c := &domain.Client{Name: name, Email: "contact@example.com"}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed client: %v", err)
	}
	return c
}

// SeedProject создаёт проект в статусе In Progress
func SeedProject(tb testing.TB, db *gorm.DB, title string) *domain.Project {
	tb.Helper()
	p := &domain.Project{
		Title:    title,
		Status:   domain.ProjectInProgress,
		Priority: domain.PriorityMedium,
	}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

// SeedTask создаёт задачу проекта без исполнителей
func SeedTask(tb testing.TB, db *gorm.DB, projectID int64, status domain.TaskStatus, deadline time.Time) *domain.Task {
	tb.Helper()
	task := &domain.Task{
		Description: "seeded task",
		Deadline:    deadline.UTC(),
		Status:      status,
		ProjectID:   projectID,
	}
	if err := db.Create(task).Error; err != nil {
		tb.Fatalf("seed task: %v", err)
	}
	return task
}

// Assign добавляет строки назначений напрямую
func Assign(tb testing.TB, db *gorm.DB, taskID int64, employeeIDs ...int64) {
	tb.Helper()
	for _, id := range employeeIDs {
		if err := db.Create(&domain.TaskAssignment{TaskID: taskID, EmployeeID: id}).Error; err != nil {
			tb.Fatalf("seed assignment: %v", err)
		}
	}
}
