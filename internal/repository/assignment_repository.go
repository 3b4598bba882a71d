package repository

import (
	"context"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// AssignmentRepository определяет интерфейс для работы с назначениями задач
type AssignmentRepository interface {
	Replace(ctx context.Context, taskID int64, employeeIDs []int64) error
	DeleteByTaskIDs(ctx context.Context, taskIDs []int64) error
	ListByTask(ctx context.Context, taskID int64) ([]domain.AssigneeRow, error)
	ListByTasks(ctx context.Context, taskIDs []int64) ([]domain.AssigneeRow, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository создаёт новый экземпляр репозитория
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Replace удаляет все назначения задачи и вставляет переданные.
// employeeIDs должны быть уже без дубликатов.
func (r *assignmentRepository) Replace(ctx context.Context, taskID int64, employeeIDs []int64) error {
	db := conn(ctx, r.db)

	if err := db.Where("task_id = ?", taskID).Delete(&domain.TaskAssignment{}).Error; err != nil {
		return err
	}

	if len(employeeIDs) == 0 {
		return nil
	}

	rows := make([]domain.TaskAssignment, len(employeeIDs))
	for i, id := range employeeIDs {
		rows[i] = domain.TaskAssignment{TaskID: taskID, EmployeeID: id}
	}
	return db.Create(&rows).Error
}

func (r *assignmentRepository) DeleteByTaskIDs(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Where("task_id IN ?", taskIDs).
		Delete(&domain.TaskAssignment{}).Error
}

func (r *assignmentRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.AssigneeRow, error) {
	return r.ListByTasks(ctx, []int64{taskID})
}

func (r *assignmentRepository) ListByTasks(ctx context.Context, taskIDs []int64) ([]domain.AssigneeRow, error) {
	rows := make([]domain.AssigneeRow, 0)
	if len(taskIDs) == 0 {
		return rows, nil
	}

	err := conn(ctx, r.db).
		Table("task_assignments AS ta").
		Select("ta.task_id, ta.employee_id, e.name AS employee_name").
		Joins("JOIN employees e ON e.id = ta.employee_id").
		Where("ta.task_id IN ?", taskIDs).
		Order("ta.task_id ASC, ta.employee_id ASC").
		Scan(&rows).Error
	return rows, err
}
