package service

import (
	"context"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/repository"
)

// AssignmentService управляет набором исполнителей задачи
type AssignmentService interface {
	SetAssignees(ctx context.Context, taskID int64, employeeIDs []int64) (domain.Assignees, error)
	GetAssignees(ctx context.Context, taskID int64) (domain.Assignees, error)
	GetAssigneesForTasks(ctx context.Context, taskIDs []int64) (map[int64]domain.Assignees, error)
}

type assignmentService struct {
	tx         repository.Transactor
	taskRepo   repository.TaskRepository
	empRepo    repository.EmployeeRepository
	assignRepo repository.AssignmentRepository
}

// NewAssignmentService создаёт новый экземпляр сервиса
func NewAssignmentService(
	tx repository.Transactor,
	taskRepo repository.TaskRepository,
	empRepo repository.EmployeeRepository,
	assignRepo repository.AssignmentRepository,
) AssignmentService {
	return &assignmentService{
		tx:         tx,
		taskRepo:   taskRepo,
		empRepo:    empRepo,
		assignRepo: assignRepo,
	}
}

// SetAssignees полностью заменяет исполнителей задачи.
// Строка задачи блокируется до конца транзакции, поэтому параллельные замены
// выполняются по очереди и итоговый набор всегда принадлежит одному вызову.
func (s *assignmentService) SetAssignees(ctx context.Context, taskID int64, employeeIDs []int64) (domain.Assignees, error) {
	ids := uniqueIDs(employeeIDs)

	var result domain.Assignees
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.taskRepo.GetForUpdate(ctx, taskID); err != nil {
			return err
		}

		if len(ids) > 0 {
			count, err := s.empRepo.CountByIDs(ctx, ids)
			if err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return domain.ErrEmployeeNotFound
			}
		}

		if err := s.assignRepo.Replace(ctx, taskID, ids); err != nil {
			return err
		}

		rows, err := s.assignRepo.ListByTask(ctx, taskID)
		if err != nil {
			return err
		}
		result = domain.NewAssignees(rows)
		return nil
	})
	if err != nil {
		return domain.Assignees{}, err
	}

	return result, nil
}

func (s *assignmentService) GetAssignees(ctx context.Context, taskID int64) (domain.Assignees, error) {
	rows, err := s.assignRepo.ListByTask(ctx, taskID)
	if err != nil {
		return domain.Assignees{}, err
	}
	return domain.NewAssignees(rows), nil
}

// GetAssigneesForTasks читает исполнителей пачки задач одним запросом.
// Задачи без исполнителей получают пустые списки.
func (s *assignmentService) GetAssigneesForTasks(ctx context.Context, taskIDs []int64) (map[int64]domain.Assignees, error) {
	rows, err := s.assignRepo.ListByTasks(ctx, taskIDs)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]domain.AssigneeRow, len(taskIDs))
	for _, row := range rows {
		grouped[row.TaskID] = append(grouped[row.TaskID], row)
	}

	result := make(map[int64]domain.Assignees, len(taskIDs))
	for _, id := range taskIDs {
		result[id] = domain.NewAssignees(grouped[id])
	}
	return result, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
