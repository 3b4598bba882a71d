package service

import (
	"context"
	"strings"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/repository"
)

// ClientService определяет интерфейс бизнес-логики для заказчиков
type ClientService interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientService struct {
	tx          repository.Transactor
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
}

// NewClientService создаёт новый экземпляр сервиса
func NewClientService(tx repository.Transactor, clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository) ClientService {
	return &clientService{
		tx:          tx,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
	}
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*domain.Client, error) {
	client := &domain.Client{
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       req.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

// Delete удаляет заказчика; его проекты остаются без заказчика
func (s *clientService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.ClearClient(ctx, id); err != nil {
			return err
		}
		return s.clientRepo.Delete(ctx, id)
	})
}
