package dto

import (
	"time"
)

// CreateTaskRequest - запрос на создание задачи; employee_ids может быть пустым списком
type CreateTaskRequest struct {
	Description string  `json:"description" validate:"required,min=1"`
	Deadline    string  `json:"deadline" validate:"required"`
	Status      string  `json:"status" validate:"required,task_status"`
	ProjectID   int64   `json:"project_id" validate:"required,min=1"`
	EmployeeIDs []int64 `json:"employee_ids" validate:"required,dive,min=1"`
}

// UpdateTaskRequest - полная замена полей задачи.
// Если employee_ids не передан, исполнители не меняются.
type UpdateTaskRequest struct {
	Description string  `json:"description" validate:"required,min=1"`
	Deadline    string  `json:"deadline" validate:"required"`
	Status      string  `json:"status" validate:"required,task_status"`
	ProjectID   int64   `json:"project_id" validate:"required,min=1"`
	EmployeeIDs []int64 `json:"employee_ids" validate:"omitempty,dive,min=1"`
}

// UpdateTaskStatusRequest - запрос на смену статуса
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,task_status"`
}

// ReassignTaskRequest - запрос на переназначение задачи
type ReassignTaskRequest struct {
	EmployeeIDs []int64 `json:"employee_ids" validate:"dive,min=1"`
}

// ProjectRequest - создание и замена проекта
type ProjectRequest struct {
	Title          string  `json:"title" validate:"required,min=1,max=200"`
	Description    string  `json:"description"`
	Status         string  `json:"status" validate:"required,project_status"`
	Priority       string  `json:"priority" validate:"omitempty,project_priority"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate *string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
	ClientID       *int64  `json:"client_id" validate:"required,min=1"`
	CreatedBy      *int64  `json:"-"`
}

// CreateClientRequest - запрос на создание заказчика
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" validate:"max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"max=50"`
	Address       string `json:"address"`
}

// CreateNotificationRequest - запись в журнал уведомлений
type CreateNotificationRequest struct {
	Message string `json:"message" validate:"required"`
}

// ClockRequest - отметка прихода или ухода
type ClockRequest struct {
	EmployeeID int64 `json:"employee_id" validate:"required,min=1"`
}

// TaskResponse - задача с исполнителями
type TaskResponse struct {
	ID            int64     `json:"task_id"`
	Description   string    `json:"description"`
	Deadline      time.Time `json:"deadline"`
	Status        string    `json:"status"`
	ProjectID     int64     `json:"project_id"`
	ProjectTitle  string    `json:"project_title,omitempty"`
	EmployeeIDs   []int64   `json:"employee_ids"`
	EmployeeNames []string  `json:"employee_names"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectResponse - данные проекта
type ProjectResponse struct {
	ID             int64     `json:"project_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	StartDate      *string   `json:"start_date"`
	CompletionDate *string   `json:"completion_date"`
	ClientID       *int64    `json:"client_id"`
	CreatedBy      *int64    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientResponse - данные заказчика
type ClientResponse struct {
	ID            int64     `json:"client_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// EmployeeResponse - сотрудник с ролью
type EmployeeResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Role *string `json:"role"`
}

// NotificationResponse - запись журнала уведомлений
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AttendanceResponse - посещаемость за сегодня
type AttendanceResponse struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}

// ClockRecordResponse - отметка прихода/ухода
type ClockRecordResponse struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employee_id"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse - успешный ответ с сообщением
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReassignResponse - результат переназначения
type ReassignResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	EmployeeIDs   []int64  `json:"employee_ids"`
	EmployeeNames []string `json:"employee_names"`
}

// VerifyResponse - пользователь из токена
type VerifyResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Role    string `json:"role"`
}
