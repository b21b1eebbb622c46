package handlers

import (
	"net/http"
	"strings"

	"PokeGallery/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProjectHandler — CRUD проектов и каскадное удаление.
type ProjectHandler struct {
	ProjectService *service.ProjectService
	Logger         *zap.SugaredLogger
}

func NewProjectHandler(projectService *service.ProjectService, logger *zap.SugaredLogger) *ProjectHandler {
	return &ProjectHandler{ProjectService: projectService, Logger: logger}
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// List — GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	projects, err := h.ProjectService.ListForUser(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("ProjectList: failed", "user_id", userID, "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Create — POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	project, err := h.ProjectService.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Get — GET /api/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	project, err := h.ProjectService.GetOwned(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Update — PATCH /api/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	project, err := h.ProjectService.Update(r.Context(), chi.URLParam(r, "id"), userID, service.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete — DELETE /api/projects/{id}: запускает каскадный протокол.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	projectID := chi.URLParam(r, "id")
	if err := h.ProjectService.Delete(r.Context(), projectID, userID); err != nil {
		h.Logger.Errorw("ProjectDelete: failed", "project_id", projectID, "user_id", userID, "error", err)
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
