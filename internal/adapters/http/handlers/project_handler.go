// Package handlers provides HTTP request handlers for the board page, its
// live list streams, the JSON API, and health probes.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// ProjectHandler serves the JSON project API under /api/v1/projects.
type ProjectHandler struct {
	svc ports.BoardService
}

func NewProjectHandler(svc ports.BoardService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects answers GET /api/v1/projects[?status=active|finished].
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := statusFilter(r.URL.Query().Get("status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject answers POST /api/v1/projects with 201 and the new project.
// The service applies the same rules as the board form.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !readRequest(w, r, &req) {
		return
	}

	input := ports.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		People:      strconv.Itoa(req.People),
	}
	created, err := h.svc.CreateProject(r.Context(), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject answers GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	found, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectResponse(found))
}

// UpdateStatus answers PATCH /api/v1/projects/{id}/status. Moving a project
// to the status it already has is a no-op that still returns 200.
func (h *ProjectHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateStatusRequest
	if !readRequest(w, r, &req) {
		return
	}

	moved, err := h.svc.TransitionStatus(r.Context(), id, req.ParsedStatus())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectResponse(moved))
}

// statusFilter turns an optional query value into a status filter. Empty
// means no filter.
func statusFilter(raw string) (*project.Status, error) {
	if raw == "" {
		return nil, nil
	}
	s, err := project.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
