package service

import (
	"context"
	"strings"
	"time"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/notify"
	"github.com/work-suite-api/internal/repository"
)

const ongoingProjectWindow = 7 * 24 * time.Hour

// ProjectService определяет интерфейс бизнес-логики для проектов
type ProjectService interface {
	Create(ctx context.Context, req *dto.ProjectRequest) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListOngoing(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req *dto.ProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	tx          repository.Transactor
	projectRepo repository.ProjectRepository
	clientRepo  repository.ClientRepository
	taskRepo    repository.TaskRepository
	assignments AssignmentService
	notifier    *notify.Notifier
	now         func() time.Time
}

// NewProjectService создаёт новый экземпляр сервиса
func NewProjectService(
	tx repository.Transactor,
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
	taskRepo repository.TaskRepository,
	assignments AssignmentService,
	notifier *notify.Notifier,
) ProjectService {
	return &projectService{
		tx:          tx,
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		taskRepo:    taskRepo,
		assignments: assignments,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *projectService) Create(ctx context.Context, req *dto.ProjectRequest) (*domain.Project, error) {
	project := &domain.Project{CreatedBy: req.CreatedBy}
	if err := s.apply(ctx, project, req); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.List(ctx)
}

// ListOngoing возвращает проекты, созданные за последнюю неделю
func (s *projectService) ListOngoing(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.ListCreatedSince(ctx, s.now().UTC().Add(-ongoingProjectWindow))
}

func (s *projectService) Update(ctx context.Context, id int64, req *dto.ProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, project, req); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete удаляет проект, его задачи и их назначения в одной транзакции,
// затем рассылает taskDeleted исполнителям каждой задачи.
func (s *projectService) Delete(ctx context.Context, id int64) error {
	var recipients map[int64]domain.Assignees
	var taskIDs []int64

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
			return err
		}

		var err error
		taskIDs, err = s.taskRepo.ListIDsByProject(ctx, id)
		if err != nil {
			return err
		}

		recipients, err = s.assignments.GetAssigneesForTasks(ctx, taskIDs)
		if err != nil {
			return err
		}

		for _, taskID := range taskIDs {
			if _, err := s.assignments.SetAssignees(ctx, taskID, nil); err != nil {
				return err
			}
		}
		if err := s.taskRepo.DeleteByProjectID(ctx, id); err != nil {
			return err
		}
		return s.projectRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	for _, taskID := range taskIDs {
		s.notifier.TaskDeleted(ctx, taskID, recipients[taskID].EmployeeIDs)
	}
	return nil
}

func (s *projectService) apply(ctx context.Context, project *domain.Project, req *dto.ProjectRequest) error {
	status, err := domain.ParseProjectStatus(req.Status)
	if err != nil {
		return err
	}
	priority, err := domain.ParseProjectPriority(req.Priority)
	if err != nil {
		return err
	}
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return err
	}
	completionDate, err := domain.ParseDate(req.CompletionDate)
	if err != nil {
		return err
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			return err
		}
	}

	project.Title = strings.TrimSpace(req.Title)
	project.Description = req.Description
	project.Status = status
	project.Priority = priority
	project.StartDate = startDate
	project.CompletionDate = completionDate
	project.ClientID = req.ClientID
	return nil
}
