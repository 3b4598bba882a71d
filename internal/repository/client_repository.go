package repository

import (
	"context"
	"errors"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// ClientRepository определяет интерфейс для работы с заказчиками
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository создаёт новый экземпляр репозитория
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	return conn(ctx, r.db).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var client domain.Client
	err := conn(ctx, r.db).First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	err := conn(ctx, r.db).Order("client_id ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
