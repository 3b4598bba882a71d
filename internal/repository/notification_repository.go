package repository

import (
	"context"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// NotificationRepository - журнал общих уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context) ([]domain.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository создаёт новый экземпляр репозитория
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return conn(ctx, r.db).Create(n).Error
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	notifications := make([]domain.Notification, 0)
	err := conn(ctx, r.db).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	return notifications, err
}
