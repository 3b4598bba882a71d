package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrEmptyAssignees       = errors.New("employee IDs are required for reassignment")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidPriority      = errors.New("invalid project priority")
	ErrInvalidDeadline      = errors.New("invalid deadline")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEmptyNotification    = errors.New("message is required")

	ErrAlreadyClockedIn = errors.New("employee is already clocked in")
	ErrNotClockedIn     = errors.New("employee is not clocked in")
)
