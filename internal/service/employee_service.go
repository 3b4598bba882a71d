package service

import (
	"context"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	ListWithRoles(ctx context.Context) ([]domain.EmployeeWithRole, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

// ListWithRoles возвращает сотрудников с названием категории в качестве роли
func (s *employeeService) ListWithRoles(ctx context.Context) ([]domain.EmployeeWithRole, error) {
	return s.empRepo.ListWithRoles(ctx)
}
