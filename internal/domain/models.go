package domain

import (
	"time"
)

// Category - роль сотрудника
type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName задаёт имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Employee представляет сотрудника
type Employee struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"type:varchar(200);not null"`
	Email      string    `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	CategoryID *int64    `json:"category_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// EmployeeWithRole - сотрудник с названием категории
type EmployeeWithRole struct {
	ID   int64
	Name string
	Role *string
}

// Client представляет заказчика
type Client struct {
	ID            int64     `json:"client_id" gorm:"column:client_id;primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:varchar(200);not null"`
	ContactPerson string    `json:"contact_person" gorm:"type:varchar(200)"`
	Email         string    `json:"email" gorm:"type:varchar(200);not null"`
	Phone         string    `json:"phone" gorm:"type:varchar(50)"`
	Address       string    `json:"address" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Client) TableName() string {
	return "clients"
}

// Project представляет проект заказчика
type Project struct {
	ID             int64           `json:"project_id" gorm:"column:project_id;primaryKey;autoIncrement"`
	Title          string          `json:"title" gorm:"type:varchar(200);not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Status         ProjectStatus   `json:"status" gorm:"type:varchar(20);not null"`
	Priority       ProjectPriority `json:"priority" gorm:"type:varchar(10);not null"`
	StartDate      *time.Time      `json:"start_date" gorm:"type:date"`
	CompletionDate *time.Time      `json:"completion_date" gorm:"type:date"`
	ClientID       *int64          `json:"client_id" gorm:"index"`
	CreatedBy      *int64          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Client *Client `json:"-" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName задаёт имя таблицы для GORM
func (Project) TableName() string {
	return "projects"
}

// Task представляет задачу проекта. Исполнители хранятся только в task_assignments.
type Task struct {
	ID          int64      `json:"task_id" gorm:"column:task_id;primaryKey;autoIncrement"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Deadline    time.Time  `json:"deadline" gorm:"not null"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null"`
	ProjectID   int64      `json:"project_id" gorm:"not null;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Task) TableName() string {
	return "tasks"
}

// TaskAssignment - связь задачи и сотрудника, не более одной строки на пару
type TaskAssignment struct {
	TaskID     int64 `json:"task_id" gorm:"primaryKey;autoIncrement:false"`
	EmployeeID int64 `json:"employee_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName задаёт имя таблицы для GORM
func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// AssigneeRow - строка соединения task_assignments с employees
type AssigneeRow struct {
	TaskID       int64
	EmployeeID   int64
	EmployeeName string
}

// Assignees - денормализованный список исполнителей задачи
type Assignees struct {
	EmployeeIDs   []int64
	EmployeeNames []string
}

// NewAssignees собирает исполнителей из строк соединения, сохраняя порядок строк
func NewAssignees(rows []AssigneeRow) Assignees {
	a := Assignees{
		EmployeeIDs:   make([]int64, 0, len(rows)),
		EmployeeNames: make([]string, 0, len(rows)),
	}
	for _, row := range rows {
		a.EmployeeIDs = append(a.EmployeeIDs, row.EmployeeID)
		a.EmployeeNames = append(a.EmployeeNames, row.EmployeeName)
	}
	return a
}

// TaskWithAssignees - задача вместе с исполнителями
type TaskWithAssignees struct {
	TaskWithProject
	Assignees
}

// TaskWithProject - задача с названием проекта
type TaskWithProject struct {
	Task
	ProjectTitle string
}

// Notification - запись журнала уведомлений, не привязана к сотруднику
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Notification) TableName() string {
	return "notifications"
}

// ClockRecord - отметка прихода/ухода сотрудника
type ClockRecord struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64      `json:"employee_id" gorm:"not null;index"`
	ClockIn    time.Time  `json:"clock_in" gorm:"not null;index"`
	ClockOut   *time.Time `json:"clock_out"`
}

// TableName задаёт имя таблицы для GORM
func (ClockRecord) TableName() string {
	return "clock_records"
}

// AttendanceSummary - посещаемость за день
type AttendanceSummary struct {
	Present int64
	Absent  int64
}
