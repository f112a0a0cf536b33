package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightops/peoplehub-backend-go/internal/domain/project"
	"github.com/brightops/peoplehub-backend-go/internal/handler/http/response"
	projectService "github.com/brightops/peoplehub-backend-go/internal/service/project"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService *projectService.ProjectService
}

func NewProjectHandler(svc *projectService.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: svc}
}

func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	employeeID, _ := employeeIDFromRequest(r)

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.projectService.CreateProject(r.Context(), tenantID, employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", p)
}

func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	p, err := h.projectService.GetProject(r.Context(), tenantID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var status *project.ProjectStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := project.ProjectStatus(s)
		status = &st
	}

	projects, err := h.projectService.ListProjects(r.Context(), tenantID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	p, err := h.projectService.UpdateProject(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", p)
}

func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), tenantID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
