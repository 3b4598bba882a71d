package repository

import (
	"context"
	"errors"
	"time"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// ProjectRepository определяет интерфейс для работы с проектами
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	ClearClient(ctx context.Context, clientID int64) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый экземпляр репозитория
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return conn(ctx, r.db).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	err := conn(ctx, r.db).First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	projects := make([]domain.Project, 0)
	err := conn(ctx, r.db).Order("project_id ASC").Find(&projects).Error
	return projects, err
}

// ListCreatedSince возвращает недавние проекты; без даты начала идут последними
func (r *projectRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Project, error) {
	projects := make([]domain.Project, 0)
	err := conn(ctx, r.db).
		Where("created_at >= ?", since).
		Order("CASE WHEN start_date IS NULL THEN 1 ELSE 0 END, start_date ASC, project_id ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	return conn(ctx, r.db).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// ClearClient отвязывает проекты от удаляемого заказчика
func (r *projectRepository) ClearClient(ctx context.Context, clientID int64) error {
	return conn(ctx, r.db).
		Model(&domain.Project{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
}
