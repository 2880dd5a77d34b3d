package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectInput carries the raw values of the project form. People is kept
// as the submitted text; the service decides whether it is a usable number.
type ProjectInput struct {
	Title       string
	Description string
	People      string
}

// BoardService defines the service port for the project board.
// Implemented by the application layer; called by inbound adapters (HTML and
// JSON handlers) and by the render components that subscribe to changes.
type BoardService interface {
	// ListProjects returns all projects in insertion order, optionally
	// restricted to a single status. A nil status means every project.
	ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)

	// CreateProject validates the form input and, only if every rule passes,
	// adds an active project. Returns domain.ErrInvalidInput otherwise, with
	// the state left untouched.
	CreateProject(ctx context.Context, input ProjectInput) (*project.Project, error)

	// TransitionStatus moves a project to the given status. Subscribers are
	// notified even when the ID is unknown, in which case domain.ErrNotFound
	// is returned.
	TransitionStatus(ctx context.Context, id string, status project.Status) (*project.Project, error)

	// Subscribe registers fn for every subsequent state change and returns a
	// func that removes it.
	Subscribe(fn state.Listener) func()
}
