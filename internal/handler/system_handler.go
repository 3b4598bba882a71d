package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/dto"
)

// Pinger - проверка доступности базы данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	responder
	db Pinger
}

func NewSystemHandler(db Pinger, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		responder: newResponder(logger),
		db:        db,
	}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health check failed", slog.Any("error", err))
		h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Verify возвращает пользователя из токена
func (h *SystemHandler) Verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Not Authenticated")
		return
	}

	h.respondJSON(w, http.StatusOK, dto.VerifyResponse{
		Success: true,
		ID:      identity.ID,
		Role:    identity.Role,
	})
}
