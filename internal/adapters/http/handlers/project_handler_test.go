package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
	"github.com/jsamuelsen11/projectboard/mocks"
)

// callAPI routes one request through the JSON API handlers backed by svc.
func callAPI(t *testing.T, svc ports.BoardService, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	h := handlers.NewProjectHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/projects", h.ListProjects)
	r.Post("/api/v1/projects", h.CreateProject)
	r.Get("/api/v1/projects/{id}", h.GetProject)
	r.Patch("/api/v1/projects/{id}/status", h.UpdateStatus)

	req := httptest.NewRequest(method, target, nil)
	if body != nil {
		req = httptest.NewRequest(method, target, encode(t, body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	finished := project.StatusFinished

	tests := []struct {
		name       string
		target     string
		setup      func(*mocks.MockBoardService)
		wantStatus int
		wantCount  int
	}{
		{
			name:   "all projects",
			target: "/api/v1/projects",
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().ListProjects(mock.Anything, (*project.Status)(nil)).
					Return([]project.Project{*sampleProject(project.StatusActive)}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:   "status filter is case insensitive",
			target: "/api/v1/projects?status=Finished",
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().ListProjects(mock.Anything, &finished).Return([]project.Project{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown status",
			target:     "/api/v1/projects?status=archived",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "service unavailable",
			target: "/api/v1/projects",
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().ListProjects(mock.Anything, (*project.Status)(nil)).Return(nil, domain.ErrUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockBoardService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := callAPI(t, svc, http.MethodGet, tt.target, nil)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantCount, decodeJSON[dto.ProjectListResponse](t, rec).Count)
			}
		})
	}
}

func TestCreateProject_PassesPeopleAsText(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockBoardService(t)

	svc.EXPECT().CreateProject(mock.Anything, ports.ProjectInput{
		Title:       "Build API",
		Description: "Design and implement",
		People:      "3",
	}).Return(sampleProject(project.StatusActive), nil)

	rec := callAPI(t, svc, http.MethodPost, "/api/v1/projects",
		dto.CreateProjectRequest{Title: "Build API", Description: "Design and implement", People: 3})

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProjectResponse](t, rec)
	assert.Equal(t, sampleID, resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestCreateProject_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
	}{
		{name: "malformed JSON", body: "{bad"},
		{name: "empty title", body: dto.CreateProjectRequest{Description: "Design and implement", People: 3}},
		{name: "short description", body: dto.CreateProjectRequest{Title: "Build API", Description: "abc", People: 3}},
		{name: "no people", body: dto.CreateProjectRequest{Title: "Build API", Description: "Design and implement"}},
		{name: "too many people", body: dto.CreateProjectRequest{Title: "Build API", Description: "Design and implement", People: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// No expectations: reaching the service fails the test.
			svc := mocks.NewMockBoardService(t)

			rec := callAPI(t, svc, http.MethodPost, "/api/v1/projects", tt.body)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.NotEmpty(t, decodeJSON[dto.ErrorResponse](t, rec).Errors)
		})
	}
}

func TestCreateProject_ServiceRejects(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockBoardService(t)

	svc.EXPECT().CreateProject(mock.Anything, mock.AnythingOfType("ports.ProjectInput")).
		Return(nil, domain.ErrInvalidInput)

	rec := callAPI(t, svc, http.MethodPost, "/api/v1/projects",
		dto.CreateProjectRequest{Title: "Build API", Description: "Design and implement", People: 3})

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		result     *project.Project
		err        error
		wantStatus int
	}{
		{name: "found", id: sampleID, result: sampleProject(project.StatusActive), wantStatus: http.StatusOK},
		{name: "missing", id: "missing", err: fmt.Errorf("project %q: %w", "missing", domain.ErrNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockBoardService(t)
			svc.EXPECT().GetProject(mock.Anything, tt.id).Return(tt.result, tt.err)

			rec := callAPI(t, svc, http.MethodGet, "/api/v1/projects/"+tt.id, nil)

			requireStatus(t, rec, tt.wantStatus)
			if tt.result != nil {
				assert.Equal(t, tt.id, decodeJSON[dto.ProjectResponse](t, rec).ID)
			}
		})
	}
}

func TestGetProject_BlankID(t *testing.T) {
	t.Parallel()

	rec := callAPI(t, mocks.NewMockBoardService(t), http.MethodGet, "/api/v1/projects/%20", nil)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("moves the project", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockBoardService(t)
		svc.EXPECT().TransitionStatus(mock.Anything, sampleID, project.StatusFinished).
			Return(sampleProject(project.StatusFinished), nil)

		rec := callAPI(t, svc, http.MethodPatch, "/api/v1/projects/"+sampleID+"/status",
			dto.UpdateStatusRequest{Status: "finished"})

		requireStatus(t, rec, http.StatusOK)
		assert.Equal(t, "finished", decodeJSON[dto.ProjectResponse](t, rec).Status)
	})

	t.Run("unknown status never reaches the service", func(t *testing.T) {
		t.Parallel()
		rec := callAPI(t, mocks.NewMockBoardService(t), http.MethodPatch, "/api/v1/projects/"+sampleID+"/status",
			dto.UpdateStatusRequest{Status: "archived"})

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("unknown project", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockBoardService(t)
		svc.EXPECT().TransitionStatus(mock.Anything, "missing", project.StatusFinished).
			Return(nil, domain.ErrNotFound)

		rec := callAPI(t, svc, http.MethodPatch, "/api/v1/projects/missing/status",
			dto.UpdateStatusRequest{Status: "finished"})

		requireStatus(t, rec, http.StatusNotFound)
	})
}
