package board

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const projectsPath = "/api/v1/projects"

var _ ports.BoardClient = (*Client)(nil)

// Client implements [ports.BoardClient] against a board server's JSON API.
//
// Every call goes through the [httpclient.Client], which supplies circuit
// breaking, rate limiting, retry with backoff, and trace propagation.
// Error responses come back as domain errors via responseError.
type Client struct {
	req *requester
}

// NewClient creates a Client whose requests are sent through client. The
// client's BaseURL should be the board server root (e.g.
// "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{req: &requester{client: client, logger: logger}}
}

// ListProjects fetches GET /api/v1/projects, optionally filtered by status.
func (c *Client) ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error) {
	path := projectsPath
	if status != nil {
		path += "?" + url.Values{"status": {status.String()}}.Encode()
	}

	var body dto.ProjectListResponse
	if err := c.req.call(ctx, http.MethodGet, path, http.StatusOK, nil, &body); err != nil {
		return nil, err
	}

	projects := make([]project.Project, len(body.Projects))
	for i := range body.Projects {
		projects[i] = body.Projects[i].ToProject()
	}
	return projects, nil
}

// GetProject fetches GET /api/v1/projects/{id}.
func (c *Client) GetProject(ctx context.Context, id string) (*project.Project, error) {
	var body dto.ProjectResponse
	if err := c.req.call(ctx, http.MethodGet, projectPath(id), http.StatusOK, nil, &body); err != nil {
		return nil, err
	}
	p := body.ToProject()
	return &p, nil
}

// CreateProject sends POST /api/v1/projects. A people value that is not a
// whole number is rejected locally with a *domain.ValidationError, since the
// wire format carries it as an integer.
func (c *Client) CreateProject(ctx context.Context, input ports.ProjectInput) (*project.Project, error) {
	people, err := strconv.Atoi(strings.TrimSpace(input.People))
	if err != nil {
		return nil, domain.FieldError("people", "must be a whole number")
	}

	reqBody := dto.CreateProjectRequest{
		Title:       input.Title,
		Description: input.Description,
		People:      people,
	}

	var body dto.ProjectResponse
	if err := c.req.call(ctx, http.MethodPost, projectsPath, http.StatusCreated, reqBody, &body); err != nil {
		return nil, err
	}
	p := body.ToProject()
	return &p, nil
}

// TransitionStatus sends PATCH /api/v1/projects/{id}/status.
func (c *Client) TransitionStatus(ctx context.Context, id string, status project.Status) (*project.Project, error) {
	reqBody := dto.UpdateStatusRequest{Status: status.String()}

	var body dto.ProjectResponse
	if err := c.req.call(ctx, http.MethodPatch, projectPath(id)+"/status", http.StatusOK, reqBody, &body); err != nil {
		return nil, err
	}
	p := body.ToProject()
	return &p, nil
}

func projectPath(id string) string {
	return projectsPath + "/" + url.PathEscape(id)
}
