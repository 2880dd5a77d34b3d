// Package dto holds the JSON shapes of the board API: project bodies, the
// request types with their checks, health probe bodies, and RFC 9457
// problem details for errors. The board client decodes the same types.
package dto

import (
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectResponse is the wire form of a project. CreatedAt is RFC 3339.
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

// ToProjectListResponse keeps the state's insertion order.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	resp := ProjectListResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Count:    len(projects),
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, ToProjectResponse(&projects[i]))
	}
	return resp
}

// ToProject is the client-side inverse of ToProjectResponse. An unparseable
// timestamp leaves CreatedAt zero.
func (r *ProjectResponse) ToProject() project.Project {
	created, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return project.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		People:      r.People,
		Status:      project.Status(r.Status),
		CreatedAt:   created,
	}
}
