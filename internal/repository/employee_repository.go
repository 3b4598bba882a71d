package repository

import (
	"context"
	"errors"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	ListWithRoles(ctx context.Context) ([]domain.EmployeeWithRole, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return conn(ctx, r.db).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// CountByIDs считает, сколько из переданных (различных) id существует
func (r *employeeRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *employeeRepository) ListWithRoles(ctx context.Context) ([]domain.EmployeeWithRole, error) {
	employees := make([]domain.EmployeeWithRole, 0)
	err := conn(ctx, r.db).
		Table("employees AS e").
		Select("e.id, e.name, c.name AS role").
		Joins("LEFT JOIN categories c ON c.id = e.category_id").
		Order("e.id ASC").
		Scan(&employees).Error
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}
