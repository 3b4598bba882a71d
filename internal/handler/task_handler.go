package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/service"
)

type TaskHandler struct {
	responder
	taskService service.TaskService
	empService  service.EmployeeService
}

func NewTaskHandler(taskService service.TaskService, empService service.EmployeeService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		responder:   newResponder(logger),
		taskService: taskService,
		empService:  empService,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var projectID *int64
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.respondError(w, http.StatusBadRequest, "invalid project_id")
			return
		}
		projectID = &id
	}

	tasks, err := h.taskService.List(r.Context(), projectID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "tasks", toTaskResponses(tasks))
}

func (h *TaskHandler) ListOngoing(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListOngoing(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "tasks", toTaskResponses(tasks))
}

// ListByEmployee возвращает задачи сотрудника; для неизвестного id список пуст
func (h *TaskHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.taskService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "tasks", toTaskResponses(tasks))
}

func (h *TaskHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.ListWithRoles(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = dto.EmployeeResponse{ID: e.ID, Name: e.Name, Role: e.Role}
	}
	h.respondOK(w, http.StatusOK, "employees", resp)
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "task", toTaskResponse(task))
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.taskService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusCreated, "task", toTaskResponse(task))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.taskService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "task", toTaskResponse(task))
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateTaskStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "task", toTaskResponse(task))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondMessage(w, "Task deleted successfully")
}

func (h *TaskHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.ReassignTaskRequest
	if !h.decode(w, r, &req) {
		return
	}

	assignees, err := h.taskService.Reassign(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ReassignResponse{
		Success:       true,
		Message:       "Task reassigned successfully",
		EmployeeIDs:   assignees.EmployeeIDs,
		EmployeeNames: assignees.EmployeeNames,
	})
}

func toTaskResponse(t *domain.TaskWithAssignees) dto.TaskResponse {
	ids, names := t.EmployeeIDs, t.EmployeeNames
	if ids == nil {
		ids = []int64{}
	}
	if names == nil {
		names = []string{}
	}

	return dto.TaskResponse{
		ID:            t.ID,
		Description:   t.Description,
		Deadline:      t.Deadline,
		Status:        string(t.Status),
		ProjectID:     t.ProjectID,
		ProjectTitle:  t.ProjectTitle,
		EmployeeIDs:   ids,
		EmployeeNames: names,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTaskResponses(tasks []domain.TaskWithAssignees) []dto.TaskResponse {
	resp := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = toTaskResponse(&tasks[i])
	}
	return resp
}
