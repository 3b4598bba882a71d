package notify

import (
	"context"
	"fmt"
	"log/slog"
)

// Имена событий жизненного цикла задачи
const (
	EventTaskAssigned   = "taskAssigned"
	EventTaskUpdated    = "taskUpdated"
	EventTaskDeleted    = "taskDeleted"
	EventTaskReassigned = "taskReassigned"
)

// Payload - данные события задачи
type Payload struct {
	TaskID  int64  `json:"taskId"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// Event - событие, доставляемое в комнату пользователя
type Event struct {
	Name string  `json:"event"`
	Data Payload `json:"data"`
}

// Publisher доставляет событие всем подключениям комнаты
type Publisher interface {
	Publish(ctx context.Context, room string, event Event) error
}

// UserRoom возвращает имя персональной комнаты сотрудника
func UserRoom(employeeID int64) string {
	return fmt.Sprintf("user_%d", employeeID)
}

// Notifier рассылает события задач назначенным сотрудникам.
// Вызывать только после фиксации транзакции.
type Notifier struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewNotifier создаёт новый экземпляр рассыльщика
func NewNotifier(publisher Publisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger,
	}
}

func (n *Notifier) TaskAssigned(ctx context.Context, taskID int64, status string, employeeIDs []int64) {
	n.fanOut(ctx, EventTaskAssigned, Payload{
		TaskID:  taskID,
		Status:  status,
		Message: fmt.Sprintf("Task #%d has been assigned to you", taskID),
	}, employeeIDs)
}

func (n *Notifier) TaskUpdated(ctx context.Context, taskID int64, status string, employeeIDs []int64) {
	n.fanOut(ctx, EventTaskUpdated, Payload{
		TaskID:  taskID,
		Status:  status,
		Message: fmt.Sprintf("Task #%d has been updated", taskID),
	}, employeeIDs)
}

func (n *Notifier) TaskDeleted(ctx context.Context, taskID int64, employeeIDs []int64) {
	n.fanOut(ctx, EventTaskDeleted, Payload{
		TaskID:  taskID,
		Message: fmt.Sprintf("Task #%d has been deleted", taskID),
	}, employeeIDs)
}

func (n *Notifier) TaskReassigned(ctx context.Context, taskID int64, employeeIDs []int64) {
	n.fanOut(ctx, EventTaskReassigned, Payload{
		TaskID:  taskID,
		Message: fmt.Sprintf("Task #%d has been reassigned", taskID),
	}, employeeIDs)
}

// fanOut отправляет по одному событию в комнату каждого получателя.
// Доставка best-effort: ошибки только логируются.
func (n *Notifier) fanOut(ctx context.Context, name string, payload Payload, employeeIDs []int64) {
	if n == nil || n.publisher == nil {
		return
	}

	event := Event{Name: name, Data: payload}
	seen := make(map[int64]struct{}, len(employeeIDs))

	for _, id := range employeeIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		room := UserRoom(id)
		if err := n.publisher.Publish(ctx, room, event); err != nil {
			n.logger.Warn("failed to publish event",
				slog.String("event", name),
				slog.String("room", room),
				slog.Int64("task_id", payload.TaskID),
				slog.Any("error", err),
			)
		}
	}
}
