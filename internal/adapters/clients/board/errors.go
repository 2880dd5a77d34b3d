// Package board is the outbound adapter for a board server's JSON API. It
// speaks the /api/v1 wire format and maps problem+json responses back onto
// domain errors, so callers such as projectctl only ever see domain types.
package board

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
)

const maxProblemBytes = 1 << 20

// sentinelFor is the inverse of dto.StatusFor. 429 counts as unavailable so
// callers treat a throttled board like a busy one.
func sentinelFor(status int) error {
	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	}
	return nil
}

// responseError turns a non-success response into a domain error. Field
// problems on a validation answer come back as *domain.ValidationError
// keyed by bare field name.
func responseError(resp *http.Response) error {
	problem := readProblem(resp)

	detail := problem.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel := sentinelFor(resp.StatusCode)
	switch {
	case sentinel == nil:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	case sentinel == domain.ErrValidation && len(problem.Errors) > 0:
		fields := make(map[string]string, len(problem.Errors))
		for _, e := range problem.Errors {
			// Locations are "body.title", "query.status" and so on.
			name := e.Location
			if _, after, ok := strings.Cut(name, "."); ok {
				name = after
			}
			fields[name] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	default:
		return fmt.Errorf("%s: %w", detail, sentinel)
	}
}

// readProblem decodes a problem+json body. Anything else, or a body that
// does not parse, yields the zero value.
func readProblem(resp *http.Response) dto.ErrorResponse {
	var problem dto.ErrorResponse
	if resp.Body == nil {
		return problem
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return problem
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&problem); err != nil {
		return dto.ErrorResponse{}
	}
	return problem
}
