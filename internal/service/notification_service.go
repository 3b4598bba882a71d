package service

import (
	"context"
	"strings"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/repository"
)

// NotificationService ведёт журнал общих уведомлений.
// С рассылкой событий задач не связан.
type NotificationService interface {
	Create(ctx context.Context, message string) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService создаёт новый экземпляр сервиса
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, message string) (*domain.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyNotification
	}

	n := &domain.Notification{Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.List(ctx)
}
