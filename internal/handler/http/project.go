package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)

	ListMembers(w http.ResponseWriter, r *http.Request)
	AssignMembers(w http.ResponseWriter, r *http.Request)

	ListClientProjects(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// ListProjects implements ProjectHandler.
func (h *ProjectHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	var filter project.ListProjectsFilter
	filter.Page, filter.Limit = pageLimit(r)
	filter.Search = r.URL.Query().Get("search")
	if status := r.URL.Query().Get("status"); status != "" {
		parsed := project.Status(status)
		filter.Status = &parsed
	}
	if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		filter.ClientID = &clientID
	}

	projects, total, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, projects, response.NewMeta(filter.Page, filter.Limit, total))
}

// GetProject implements ProjectHandler.
func (h *ProjectHandlerImpl) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	projectResponse, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projectResponse)
}

// CreateProject implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	projectResponse, err := h.projectService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", projectResponse)
}

// UpdateProject implements ProjectHandler.
func (h *ProjectHandlerImpl) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var updateReq project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	projectResponse, err := h.projectService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", projectResponse)
}

// DeleteProject implements ProjectHandler.
func (h *ProjectHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}

// ListMembers implements ProjectHandler.
func (h *ProjectHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	members, err := h.projectService.ListMembers(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// ListClientProjects implements ProjectHandler.
func (h *ProjectHandlerImpl) ListClientProjects(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	projects, err := h.projectService.ListByClient(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// AssignMembers implements ProjectHandler.
func (h *ProjectHandlerImpl) AssignMembers(w http.ResponseWriter, r *http.Request) {
	var assignReq project.AssignMembersRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignMembers decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.ProjectID = chi.URLParam(r, "id")

	if err := assignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	members, err := h.projectService.AssignMembers(r.Context(), assignReq)
	if err != nil {
		slog.Error("AssignMembers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project members assigned successfully", members)
}
