package handlers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// Body limits. The board form is three short fields; the API gets more room.
const (
	maxJSONBodyBytes = 1 << 20
	maxFormBodyBytes = 64 << 10
)

// pathID returns the trimmed {param} segment, rejecting a blank one.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", domain.FieldError(param, domain.MsgRequired)
	}
	return id, nil
}

// pathStatus resolves {param} to a list status. There is no such list for an
// unknown value, so it is ErrNotFound rather than a validation error.
func pathStatus(r *http.Request, param string) (project.Status, error) {
	s, err := project.ParseStatus(chi.URLParam(r, param))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return s, nil
}

// wantsJSON reports whether the Accept header names a JSON media type.
func wantsJSON(r *http.Request) bool {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "application/json", "application/problem+json":
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding JSON response", slog.Any("error", err))
	}
}

// parseForm reads a bounded urlencoded body. A 400 is written on failure.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodyBytes)
	if err := r.ParseForm(); err != nil {
		dto.WriteErrorResponse(w, r, domain.FieldError("body", "invalid form"))
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// readRequest decodes a bounded JSON body into dst and runs its Validate.
// Either failure is answered with a problem response and false.
func readRequest[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.FieldError("body", "invalid JSON"))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
