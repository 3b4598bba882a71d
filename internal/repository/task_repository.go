package repository

import (
	"context"
	"errors"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskFilter - условия выборки задач
type TaskFilter struct {
	ProjectID   *int64
	OngoingOnly bool
}

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.TaskWithProject, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	DeleteByProjectID(ctx context.Context, projectID int64) error
	List(ctx context.Context, filter TaskFilter) ([]domain.TaskWithProject, error)
	ListIDsByProject(ctx context.Context, projectID int64) ([]int64, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TaskWithProject, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository создаёт новый экземпляр репозитория
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return conn(ctx, r.db).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.TaskWithProject, error) {
	var rows []domain.TaskWithProject
	err := r.withProject(ctx).
		Where("t.task_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &rows[0], nil
}

// GetForUpdate читает задачу с блокировкой строки до конца транзакции
func (r *taskRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return conn(ctx, r.db).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteByProjectID(ctx context.Context, projectID int64) error {
	return conn(ctx, r.db).
		Where("project_id = ?", projectID).
		Delete(&domain.Task{}).Error
}

func (r *taskRepository) List(ctx context.Context, filter TaskFilter) ([]domain.TaskWithProject, error) {
	query := r.withProject(ctx)

	if filter.ProjectID != nil {
		query = query.Where("t.project_id = ?", *filter.ProjectID)
	}

	if filter.OngoingOnly {
		query = query.Where("t.status <> ?", domain.TaskCompleted).Order("t.deadline ASC")
	}

	tasks := make([]domain.TaskWithProject, 0)
	err := query.Order("t.task_id ASC").Scan(&tasks).Error
	return tasks, err
}

func (r *taskRepository) ListIDsByProject(ctx context.Context, projectID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := conn(ctx, r.db).
		Model(&domain.Task{}).
		Where("project_id = ?", projectID).
		Order("task_id ASC").
		Pluck("task_id", &ids).Error
	return ids, err
}

func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TaskWithProject, error) {
	tasks := make([]domain.TaskWithProject, 0)
	err := r.withProject(ctx).
		Joins("JOIN task_assignments ta ON ta.task_id = t.task_id").
		Where("ta.employee_id = ?", employeeID).
		Order("t.deadline ASC, t.task_id ASC").
		Scan(&tasks).Error
	return tasks, err
}

func (r *taskRepository) withProject(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Table("tasks AS t").
		Select("t.*, COALESCE(p.title, '') AS project_title").
		Joins("LEFT JOIN projects p ON p.project_id = t.project_id")
}
