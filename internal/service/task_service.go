package service

import (
	"context"
	"strings"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/notify"
	"github.com/work-suite-api/internal/repository"
)

// TaskService определяет интерфейс бизнес-логики для задач
type TaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*domain.TaskWithAssignees, error)
	GetByID(ctx context.Context, id int64) (*domain.TaskWithAssignees, error)
	List(ctx context.Context, projectID *int64) ([]domain.TaskWithAssignees, error)
	ListOngoing(ctx context.Context) ([]domain.TaskWithAssignees, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TaskWithAssignees, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*domain.TaskWithAssignees, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateTaskStatusRequest) (*domain.TaskWithAssignees, error)
	Delete(ctx context.Context, id int64) error
	Reassign(ctx context.Context, id int64, req *dto.ReassignTaskRequest) (domain.Assignees, error)
}

type taskService struct {
	tx          repository.Transactor
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	assignments AssignmentService
	notifier    *notify.Notifier
}

// NewTaskService создаёт новый экземпляр сервиса
func NewTaskService(
	tx repository.Transactor,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	assignments AssignmentService,
	notifier *notify.Notifier,
) TaskService {
	return &taskService{
		tx:          tx,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		assignments: assignments,
		notifier:    notifier,
	}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*domain.TaskWithAssignees, error) {
	task, err := newTask(req.Description, req.Deadline, req.Status, req.ProjectID)
	if err != nil {
		return nil, err
	}

	var assignees domain.Assignees
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.projectRepo.GetByID(ctx, task.ProjectID); err != nil {
			return err
		}
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
		assignees, err = s.assignments.SetAssignees(ctx, task.ID, req.EmployeeIDs)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.TaskAssigned(ctx, task.ID, string(task.Status), assignees.EmployeeIDs)

	return s.GetByID(ctx, task.ID)
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*domain.TaskWithAssignees, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignees, err := s.assignments.GetAssignees(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.TaskWithAssignees{TaskWithProject: *task, Assignees: assignees}, nil
}

func (s *taskService) List(ctx context.Context, projectID *int64) ([]domain.TaskWithAssignees, error) {
	tasks, err := s.taskRepo.List(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	return s.withAssignees(ctx, tasks)
}

func (s *taskService) ListOngoing(ctx context.Context) ([]domain.TaskWithAssignees, error) {
	tasks, err := s.taskRepo.List(ctx, repository.TaskFilter{OngoingOnly: true})
	if err != nil {
		return nil, err
	}
	return s.withAssignees(ctx, tasks)
}

func (s *taskService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TaskWithAssignees, error) {
	tasks, err := s.taskRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.withAssignees(ctx, tasks)
}

func (s *taskService) Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*domain.TaskWithAssignees, error) {
	update, err := newTask(req.Description, req.Deadline, req.Status, req.ProjectID)
	if err != nil {
		return nil, err
	}

	var recipients []int64
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if _, err := s.projectRepo.GetByID(ctx, update.ProjectID); err != nil {
			return err
		}

		task.Description = update.Description
		task.Deadline = update.Deadline
		task.Status = update.Status
		task.ProjectID = update.ProjectID
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return err
		}

		var assignees domain.Assignees
		if req.EmployeeIDs != nil {
			assignees, err = s.assignments.SetAssignees(ctx, id, req.EmployeeIDs)
		} else {
			assignees, err = s.assignments.GetAssignees(ctx, id)
		}
		if err != nil {
			return err
		}
		recipients = assignees.EmployeeIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.TaskUpdated(ctx, id, string(update.Status), recipients)

	return s.GetByID(ctx, id)
}

func (s *taskService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateTaskStatusRequest) (*domain.TaskWithAssignees, error) {
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var recipients []int64
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		task.Status = status
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return err
		}

		assignees, err := s.assignments.GetAssignees(ctx, id)
		if err != nil {
			return err
		}
		recipients = assignees.EmployeeIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.TaskUpdated(ctx, id, string(status), recipients)

	return s.GetByID(ctx, id)
}

// Delete удаляет задачу вместе с назначениями.
// Получатели taskDeleted читаются в той же транзакции до удаления строк.
func (s *taskService) Delete(ctx context.Context, id int64) error {
	var recipients []int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.taskRepo.GetForUpdate(ctx, id); err != nil {
			return err
		}

		assignees, err := s.assignments.GetAssignees(ctx, id)
		if err != nil {
			return err
		}
		recipients = assignees.EmployeeIDs

		if _, err := s.assignments.SetAssignees(ctx, id, nil); err != nil {
			return err
		}
		return s.taskRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.notifier.TaskDeleted(ctx, id, recipients)
	return nil
}

// Reassign заменяет исполнителей; taskReassigned получают только новые исполнители
func (s *taskService) Reassign(ctx context.Context, id int64, req *dto.ReassignTaskRequest) (domain.Assignees, error) {
	if len(req.EmployeeIDs) == 0 {
		return domain.Assignees{}, domain.ErrEmptyAssignees
	}

	assignees, err := s.assignments.SetAssignees(ctx, id, req.EmployeeIDs)
	if err != nil {
		return domain.Assignees{}, err
	}

	s.notifier.TaskReassigned(ctx, id, assignees.EmployeeIDs)
	return assignees, nil
}

func (s *taskService) withAssignees(ctx context.Context, tasks []domain.TaskWithProject) ([]domain.TaskWithAssignees, error) {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	byTask, err := s.assignments.GetAssigneesForTasks(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TaskWithAssignees, len(tasks))
	for i, t := range tasks {
		result[i] = domain.TaskWithAssignees{TaskWithProject: t, Assignees: byTask[t.ID]}
	}
	return result, nil
}

func newTask(description, deadline, status string, projectID int64) (*domain.Task, error) {
	parsedStatus, err := domain.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}
	parsedDeadline, err := domain.ParseDeadline(deadline)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		Description: strings.TrimSpace(description),
		Deadline:    parsedDeadline,
		Status:      parsedStatus,
		ProjectID:   projectID,
	}, nil
}
