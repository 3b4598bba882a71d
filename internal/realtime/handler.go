package realtime

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"github.com/work-suite-api/internal/auth"
)

// Handler поднимает WebSocket подключения и регистрирует их в Hub
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler создаёт обработчик /ws. Пустой Origin разрешён (не браузерные клиенты).
func NewHandler(hub *Hub, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		logger: logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	var identity *auth.Identity
	if id, ok := auth.IdentityFromContext(r.Context()); ok {
		identity = &id
	}

	client := newClient(h.hub, conn, identity, h.logger)
	go client.writePump()
	go client.readPump()
}
