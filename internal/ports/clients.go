package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// BoardClient defines the client port for a remote board's JSON API.
// Implemented by the board client adapter; used by the projectctl CLI.
type BoardClient interface {
	// ListProjects returns the board's projects, optionally filtered by status.
	ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)

	// CreateProject submits a new project. Returns domain.ErrValidation when
	// the board rejects the input.
	CreateProject(ctx context.Context, input ProjectInput) (*project.Project, error)

	// TransitionStatus moves a project to the given status.
	// Returns domain.ErrNotFound if the project does not exist.
	TransitionStatus(ctx context.Context, id string, status project.Status) (*project.Project, error)
}
