package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
)

const serverErrorMessage = "Server Error"

// responder - общая часть хендлеров: конверт ответа, валидация, ошибки сервисов
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: newValidator(),
		logger:    logger,
	}
}

// newValidator регистрирует проверки статусов и использует имена полей из json тегов
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTaskStatus(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("project_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseProjectStatus(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("project_priority", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseProjectPriority(fl.Field().String())
		return err == nil
	})

	return v
}

// decode читает JSON тело и проверяет теги валидации
func (h *responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "validation error"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "task_status":
		return "status must be one of pending, in_progress, completed"
	case "project_status":
		return "status must be one of Not Started, In Progress, On Hold, Completed, Canceled"
	case "project_priority":
		return "priority must be one of Low, Medium, High, Urgent"
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// pathID разбирает числовой параметр пути
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func (h *responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		h.respondError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, domain.ErrProjectNotFound):
		h.respondError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, domain.ErrClientNotFound):
		h.respondError(w, http.StatusNotFound, "Client not found")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, domain.ErrEmptyAssignees):
		h.respondError(w, http.StatusBadRequest, "Employee IDs are required for reassignment")
	case errors.Is(err, domain.ErrInvalidTaskStatus),
		errors.Is(err, domain.ErrInvalidProjectStatus),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidDeadline),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmptyNotification):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyClockedIn),
		errors.Is(err, domain.ErrNotClockedIn):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("internal error",
			slog.Any("error", err),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		h.respondError(w, http.StatusInternalServerError, serverErrorMessage)
	}
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondOK оборачивает данные в конверт {"success": true, key: data}
func (h *responder) respondOK(w http.ResponseWriter, status int, key string, data any) {
	h.respondJSON(w, status, map[string]any{
		"success": true,
		key:       data,
	})
}

func (h *responder) respondMessage(w http.ResponseWriter, message string) {
	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

func (h *responder) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, dto.ErrorResponse{Success: false, Message: message})
}
