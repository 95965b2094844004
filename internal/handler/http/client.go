package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/client"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	ListClients(w http.ResponseWriter, r *http.Request)
	GetClient(w http.ResponseWriter, r *http.Request)
	CreateClient(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)

	ListContacts(w http.ResponseWriter, r *http.Request)
	CreateContact(w http.ResponseWriter, r *http.Request)
	DeleteContact(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// ListClients implements ClientHandler.
func (h *ClientHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	var filter client.ListClientsFilter
	filter.Page, filter.Limit = pageLimit(r)
	filter.Search = r.URL.Query().Get("search")

	clients, total, err := h.clientService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListClients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, clients, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetClient implements ClientHandler.
func (h *ClientHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clientResponse, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clientResponse)
}

// CreateClient implements ClientHandler.
func (h *ClientHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	clientResponse, err := h.clientService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", clientResponse)
}

// UpdateClient implements ClientHandler.
func (h *ClientHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var updateReq client.UpdateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	clientResponse, err := h.clientService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", clientResponse)
}

// DeleteClient implements ClientHandler.
func (h *ClientHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteClient service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// ListContacts implements ClientHandler.
func (h *ClientHandlerImpl) ListContacts(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	contacts, err := h.clientService.ListContacts(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contacts)
}

// CreateContact implements ClientHandler.
func (h *ClientHandlerImpl) CreateContact(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateContactRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateContact decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.ClientID = chi.URLParam(r, "id")

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	contactResponse, err := h.clientService.CreateContact(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateContact service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contact created successfully", contactResponse)
}

// DeleteContact implements ClientHandler.
func (h *ClientHandlerImpl) DeleteContact(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	contactID := chi.URLParam(r, "contactID")

	if err := h.clientService.DeleteContact(r.Context(), clientID, contactID); err != nil {
		slog.Error("DeleteContact service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contact deleted successfully", nil)
}
