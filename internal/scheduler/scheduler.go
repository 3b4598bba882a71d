package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/service"
)

// AttendanceDigest раз в сутки пишет в журнал уведомлений сводку посещаемости
type AttendanceDigest struct {
	cron          *cron.Cron
	attendance    service.AttendanceService
	notifications service.NotificationService
	now           func() time.Time
	logger        *slog.Logger
}

// NewAttendanceDigest создаёт планировщик; расписание в формате cron с секундами
func NewAttendanceDigest(
	attendance service.AttendanceService,
	notifications service.NotificationService,
	now func() time.Time,
	logger *slog.Logger,
) *AttendanceDigest {
	return &AttendanceDigest{
		cron:          cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		attendance:    attendance,
		notifications: notifications,
		now:           now,
		logger:        logger,
	}
}

// Start регистрирует задачу и запускает планировщик в фоне
func (d *AttendanceDigest) Start(spec string) error {
	_, err := d.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if _, err := d.Run(ctx); err != nil {
			d.logger.Error("attendance digest failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid attendance digest schedule %q: %w", spec, err)
	}

	d.cron.Start()
	d.logger.Info("scheduler started", slog.String("attendance_digest", spec))
	return nil
}

// Run считает посещаемость за текущие сутки и сохраняет уведомление
func (d *AttendanceDigest) Run(ctx context.Context) (*domain.Notification, error) {
	day := d.now().UTC()

	summary, err := d.attendance.On(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	message := fmt.Sprintf("Attendance %s: %d present, %d absent",
		day.Format(domain.DateLayout), summary.Present, summary.Absent)

	n, err := d.notifications.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("save attendance digest: %w", err)
	}

	d.logger.Info("attendance digest saved",
		slog.Int64("present", summary.Present),
		slog.Int64("absent", summary.Absent),
	)
	return n, nil
}

// Stop останавливает планировщик и ждёт завершения запущенных задач
func (d *AttendanceDigest) Stop(ctx context.Context) {
	select {
	case <-d.cron.Stop().Done():
	case <-ctx.Done():
	}
}
