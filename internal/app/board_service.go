// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/domain/validation"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService on top of the process-wide
// ProjectState. It owns input validation, structured logging, and metrics;
// the state owns the collection and subscriber notification.
type BoardService struct {
	state   *state.ProjectState
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBoardService creates a BoardService. If metrics is nil, metric recording
// is skipped. A nil logger discards output.
func NewBoardService(st *state.ProjectState, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		state:   st,
		metrics: metrics,
		logger:  logger,
	}
}

// ListProjects returns all projects, or only those with the given status.
func (s *BoardService) ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error) {
	projects := s.state.Projects()
	if status == nil {
		return projects, nil
	}
	if !status.IsValid() {
		return nil, domain.FieldError("status", fmt.Sprintf("invalid: %q", *status))
	}

	s.logger.DebugContext(ctx, "listing projects", slog.String("status", status.String()))
	return project.FilterByStatus(projects, *status), nil
}

// GetProject returns a single project by ID.
func (s *BoardService) GetProject(_ context.Context, id string) (*project.Project, error) {
	p, ok := s.state.Get(id)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// CreateProject checks title (required), description (required, at least 5
// characters) and people (required, numeric, 1 to 5). Only when all three
// pass is the project added; any failure yields the generic
// domain.ErrInvalidInput.
func (s *BoardService) CreateProject(ctx context.Context, input ports.ProjectInput) (*project.Project, error) {
	people, ok := validateInput(input)
	if !ok {
		s.logger.InfoContext(ctx, "rejected project input",
			slog.String("operation", "CreateProject"),
			slog.String("title", input.Title),
		)
		return nil, domain.ErrInvalidInput
	}

	p := s.state.AddProject(input.Title, input.Description, people)

	s.logger.InfoContext(ctx, "project created",
		slog.String("project_id", p.ID),
		slog.String("title", p.Title),
		slog.Int("people", p.People),
	)
	s.recordCreated(ctx)

	return &p, nil
}

// TransitionStatus moves a project to status. Subscribers are notified even
// for an unknown ID; the caller then receives domain.ErrNotFound.
func (s *BoardService) TransitionStatus(ctx context.Context, id string, status project.Status) (*project.Project, error) {
	if !status.IsValid() {
		return nil, domain.FieldError("status", fmt.Sprintf("invalid: %q", status))
	}

	if !s.state.TransitionStatus(id, status) {
		s.logger.WarnContext(ctx, "status transition for unknown project",
			slog.String("operation", "TransitionStatus"),
			slog.String("project_id", id),
			slog.String("status", status.String()),
		)
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "project status changed",
		slog.String("project_id", id),
		slog.String("status", status.String()),
	)
	s.recordTransition(ctx, status)

	p, ok := s.state.Get(id)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// Subscribe registers fn with the underlying state.
func (s *BoardService) Subscribe(fn state.Listener) func() {
	return s.state.Subscribe(fn)
}

// validateInput applies the form rules and returns the parsed people count.
// People is required as text and, once parsed as an integer, must fall in
// range; text that does not parse fails.
func validateInput(input ports.ProjectInput) (int, bool) {
	rawPeople := strings.TrimSpace(input.People)
	people, err := strconv.Atoi(rawPeople)

	titleRule := validation.Rule{
		Value:    input.Title,
		Required: true,
	}
	descriptionRule := validation.Rule{
		Value:     input.Description,
		Required:  true,
		MinLength: validation.Int(project.MinDescriptionLength),
	}
	peopleRequired := validation.Rule{
		Value:    rawPeople,
		Required: true,
	}
	peopleRange := validation.Rule{
		Value: people,
		Min:   validation.Int(project.MinPeople),
		Max:   validation.Int(project.MaxPeople),
	}

	ok := validation.All(titleRule, descriptionRule, peopleRequired, peopleRange) && err == nil
	return people, ok
}

func (s *BoardService) recordCreated(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	s.metrics.ProjectsCreated.Add(ctx, 1)
}

func (s *BoardService) recordTransition(ctx context.Context, status project.Status) {
	if s.metrics == nil {
		return
	}
	s.metrics.StatusTransitions.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrProjectStatus.String(status.String())),
	)
}
