package domain

import (
	"strings"
	"time"
)

// TaskStatus - канонический статус задачи
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ParseTaskStatus приводит статус к каноническому виду:
// "In Progress", "in-progress" и "IN_PROGRESS" дают in_progress.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)

	switch TaskStatus(s) {
	case TaskPending, TaskInProgress, TaskCompleted:
		return TaskStatus(s), nil
	}
	return "", ErrInvalidTaskStatus
}

// ProjectStatus - статус проекта
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectCanceled   ProjectStatus = "Canceled"
)

var projectStatuses = []ProjectStatus{
	ProjectNotStarted, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCanceled,
}

// ParseProjectStatus принимает статус без учёта регистра
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	s := strings.TrimSpace(raw)
	for _, status := range projectStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", ErrInvalidProjectStatus
}

// ProjectPriority - приоритет проекта
type ProjectPriority string

const (
	PriorityLow    ProjectPriority = "Low"
	PriorityMedium ProjectPriority = "Medium"
	PriorityHigh   ProjectPriority = "High"
	PriorityUrgent ProjectPriority = "Urgent"
)

// ParseProjectPriority принимает приоритет без учёта регистра; пустое значение - Medium
func ParseProjectPriority(raw string) (ProjectPriority, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PriorityMedium, nil
	}
	for _, p := range []ProjectPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}

// DateLayout - формат дат проекта
const DateLayout = "2006-01-02"

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDeadline разбирает срок задачи. Время без зоны считается UTC.
func ParseDeadline(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}

// ParseDate разбирает необязательную дату YYYY-MM-DD
func ParseDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
