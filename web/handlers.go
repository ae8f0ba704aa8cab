package web

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"sup3rbob.dev/folio/content"
)

// ProjectHandler serves the project list as JSON.
type ProjectHandler struct {
	logger *log.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(logger *log.Logger) *ProjectHandler {
	return &ProjectHandler{logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, content.Projects())
}

// GetProject handles GET /api/projects/{title}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid project title")
		return
	}

	project, ok := content.ProjectByTitle(title)
	if !ok {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *log.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *log.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
