package handler

import (
	"log/slog"
	"net/http"

	"github.com/work-suite-api/internal/domain"
	"github.com/work-suite-api/internal/dto"
	"github.com/work-suite-api/internal/service"
)

type ClientHandler struct {
	responder
	service service.ClientService
}

func NewClientHandler(service service.ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		responder: newResponder(logger),
		service:   service,
	}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = toClientResponse(&clients[i])
	}
	h.respondOK(w, http.StatusOK, "clients", resp)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if !h.decode(w, r, &req) {
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondOK(w, http.StatusCreated, "client", toClientResponse(client))
}

// Delete удаляет заказчика, его проекты остаются без заказчика
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "clientId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondMessage(w, "Client deleted successfully")
}

func toClientResponse(c *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
	}
}
