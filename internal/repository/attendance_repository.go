package repository

import (
	"context"
	"errors"
	"time"

	"github.com/work-suite-api/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для работы с отметками посещаемости
type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.ClockRecord) error
	GetOpenByEmployee(ctx context.Context, employeeID int64) (*domain.ClockRecord, error)
	Update(ctx context.Context, record *domain.ClockRecord) error
	CountPresentBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *domain.ClockRecord) error {
	return conn(ctx, r.db).Create(record).Error
}

// GetOpenByEmployee возвращает отметку прихода без ухода или nil
func (r *attendanceRepository) GetOpenByEmployee(ctx context.Context, employeeID int64) (*domain.ClockRecord, error) {
	var record domain.ClockRecord
	err := conn(ctx, r.db).
		Where("employee_id = ? AND clock_out IS NULL", employeeID).
		Order("clock_in DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *domain.ClockRecord) error {
	return conn(ctx, r.db).Save(record).Error
}

// CountPresentBetween считает различных сотрудников с приходом в интервале [from, to)
func (r *attendanceRepository) CountPresentBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&domain.ClockRecord{}).
		Where("clock_in >= ? AND clock_in < ?", from, to).
		Distinct("employee_id").
		Count(&count).Error
	return count, err
}
