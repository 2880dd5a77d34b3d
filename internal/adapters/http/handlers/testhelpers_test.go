package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

const sampleID = "3f1c2a9e-7d4b-4c1e-9a55-0b6f8e2d1c7a"

func sampleProject(status project.Status) *project.Project {
	return &project.Project{
		ID:          sampleID,
		Title:       "Build API",
		Description: "Design and implement",
		People:      3,
		Status:      status,
		CreatedAt:   time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
	}
}

// encode marshals v as a request body. A string is sent verbatim.
func encode(t *testing.T, v any) io.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
