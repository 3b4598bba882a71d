package service

import (
	"context"
	"time"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/repository"
)

// AttendanceService считает посещаемость и ведёт отметки прихода/ухода
type AttendanceService interface {
	Today(ctx context.Context) (domain.AttendanceSummary, error)
	On(ctx context.Context, day time.Time) (domain.AttendanceSummary, error)
	ClockIn(ctx context.Context, employeeID int64) (*domain.ClockRecord, error)
	ClockOut(ctx context.Context, employeeID int64) (*domain.ClockRecord, error)
}

type attendanceService struct {
	tx             repository.Transactor
	attendanceRepo repository.AttendanceRepository
	empRepo        repository.EmployeeRepository
	now            func() time.Time
}

// NewAttendanceService создаёт новый экземпляр сервиса. now может быть nil.
func NewAttendanceService(
	tx repository.Transactor,
	attendanceRepo repository.AttendanceRepository,
	empRepo repository.EmployeeRepository,
	now func() time.Time,
) AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &attendanceService{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		empRepo:        empRepo,
		now:            now,
	}
}

func (s *attendanceService) Today(ctx context.Context) (domain.AttendanceSummary, error) {
	return s.On(ctx, s.now())
}

// On считает присутствующих за календарный день (UTC): отсутствующие - все остальные
func (s *attendanceService) On(ctx context.Context, day time.Time) (domain.AttendanceSummary, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	present, err := s.attendanceRepo.CountPresentBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return domain.AttendanceSummary{}, err
	}

	total, err := s.empRepo.Count(ctx)
	if err != nil {
		return domain.AttendanceSummary{}, err
	}

	return domain.AttendanceSummary{
		Present: present,
		Absent:  max(total-present, 0),
	}, nil
}

func (s *attendanceService) ClockIn(ctx context.Context, employeeID int64) (*domain.ClockRecord, error) {
	var record *domain.ClockRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}

		open, err := s.attendanceRepo.GetOpenByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrAlreadyClockedIn
		}

		record = &domain.ClockRecord{EmployeeID: employeeID, ClockIn: s.now().UTC()}
		return s.attendanceRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, employeeID int64) (*domain.ClockRecord, error) {
	var record *domain.ClockRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}

		open, err := s.attendanceRepo.GetOpenByEmployee(ctx, employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrNotClockedIn
		}

		out := s.now().UTC()
		open.ClockOut = &out
		record = open
		return s.attendanceRepo.Update(ctx, open)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
