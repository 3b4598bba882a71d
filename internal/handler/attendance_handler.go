package handler

import (
	"log/slog"
	"net/http"

	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/service"
)

type NotificationHandler struct {
	responder
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		responder: newResponder(logger),
		service:   service,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = dto.NotificationResponse{ID: n.ID, Message: n.Message, CreatedAt: n.CreatedAt}
	}
	h.respondOK(w, http.StatusOK, "notifications", resp)
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNotificationRequest
	if !h.decode(w, r, &req) {
		return
	}

	n, err := h.service.Create(r.Context(), req.Message)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusCreated, "notification", dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	})
}

type AttendanceHandler struct {
	responder
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		responder: newResponder(logger),
		service:   service,
	}
}

// Today возвращает число пришедших и отсутствующих за текущие сутки
func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Today(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "attendance", dto.AttendanceResponse{
		Present: summary.Present,
		Absent:  summary.Absent,
	})
}

func (h *AttendanceHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req dto.ClockRequest
	if !h.decode(w, r, &req) {
		return
	}

	if !canClockFor(r, req.EmployeeID) {
		h.respondError(w, http.StatusForbidden, "Access Denied")
		return
	}

	record, err := h.service.ClockIn(r.Context(), req.EmployeeID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusCreated, "record", toClockRecordResponse(record))
}

func (h *AttendanceHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req dto.ClockRequest
	if !h.decode(w, r, &req) {
		return
	}

	if !canClockFor(r, req.EmployeeID) {
		h.respondError(w, http.StatusForbidden, "Access Denied")
		return
	}

	record, err := h.service.ClockOut(r.Context(), req.EmployeeID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "record", toClockRecordResponse(record))
}

// canClockFor: сотрудник отмечает только себя, admin и manager - любого
func canClockFor(r *http.Request, employeeID int64) bool {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok || identity.IsPrivileged() {
		return true
	}
	return identity.ID == employeeID
}

func toClockRecordResponse(c *domain.ClockRecord) dto.ClockRecordResponse {
	return dto.ClockRecordResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		ClockIn:    c.ClockIn,
		ClockOut:   c.ClockOut,
	}
}
