package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/service"
)

type ProjectHandler struct {
	responder
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		responder: newResponder(logger),
		service:   service,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "projects", toProjectResponses(projects))
}

// ListOngoing возвращает проекты, начатые за последнюю неделю
func (h *ProjectHandler) ListOngoing(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListOngoing(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "projects", toProjectResponses(projects))
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "project", toProjectResponse(project))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		req.CreatedBy = &identity.ID
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusCreated, "project", toProjectResponse(project))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.ProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusOK, "project", toProjectResponse(project))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "projectId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondMessage(w, "Project deleted successfully")
}

func toProjectResponse(p *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Status:         string(p.Status),
		Priority:       string(p.Priority),
		StartDate:      formatDate(p.StartDate),
		CompletionDate: formatDate(p.CompletionDate),
		ClientID:       p.ClientID,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProjectResponses(projects []domain.Project) []dto.ProjectResponse {
	resp := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = toProjectResponse(&projects[i])
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(domain.DateLayout)
	return &s
}
