package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/work-suite-api/internal/notify"
)

// Hub - реестр комнат процесса. Подключения входят в комнаты user_<id>
// и получают события, опубликованные в эти комнаты.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	members map[*Client]map[string]struct{}
	logger  *slog.Logger
}

// NewHub создаёт пустой реестр
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		members: make(map[*Client]map[string]struct{}),
		logger:  logger,
	}
}

// Join добавляет подключение в комнату
func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}

	if h.members[c] == nil {
		h.members[c] = make(map[string]struct{})
	}
	h.members[c][room] = struct{}{}
}

// Leave убирает подключение из комнаты
func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leave(c, room)
}

// Remove убирает подключение из всех комнат (при отключении)
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range h.members[c] {
		h.leave(c, room)
	}
	delete(h.members, c)
}

func (h *Hub) leave(c *Client, room string) {
	if clients, ok := h.rooms[room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
	if rooms, ok := h.members[c]; ok {
		delete(rooms, room)
	}
}

// Members возвращает число подключений в комнате
func (h *Hub) Members(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Publish ставит событие в очередь каждого подключения комнаты.
// Пустая комната - не ошибка. Переполненная очередь теряет событие.
func (h *Hub) Publish(_ context.Context, room string, event notify.Event) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		if !c.enqueue(msg) {
			h.logger.Warn("dropping event for slow connection",
				slog.String("client_id", c.id),
				slog.String("room", room),
				slog.String("event", event.Name),
			)
		}
	}
	return nil
}
