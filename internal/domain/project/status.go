package project

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/domain"
)

// Status represents which list a project belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusActive, StatusFinished}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input (case-insensitive, surrounding space
// ignored) into a Status. Returns a *domain.ValidationError for anything else.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", domain.FieldError("status", fmt.Sprintf("invalid: %q", raw))
	}
	return s, nil
}
