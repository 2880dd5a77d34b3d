package dto

import (
	"fmt"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/domain/validation"
)

// CreateProjectRequest represents the JSON body for creating a new project.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Validate checks each field against the project rules and names every
// failing field. Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if !validation.Validate(validation.Rule{Value: r.Title, Required: true}) {
		fields["title"] = domain.MsgRequired
	}
	if !validation.Validate(validation.Rule{
		Value:     r.Description,
		Required:  true,
		MinLength: validation.Int(project.MinDescriptionLength),
	}) {
		fields["description"] = fmt.Sprintf("is required and must be at least %d characters", project.MinDescriptionLength)
	}
	if !validation.Validate(validation.Rule{
		Value: r.People,
		Min:   validation.Int(project.MinPeople),
		Max:   validation.Int(project.MaxPeople),
	}) {
		fields["people"] = fmt.Sprintf("must be %d-%d, got %d", project.MinPeople, project.MaxPeople, r.People)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateStatusRequest represents the JSON body for moving a project.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the status names a known list.
// Returns a *domain.ValidationError if it does not.
func (r *UpdateStatusRequest) Validate() error {
	_, err := project.ParseStatus(r.Status)
	return err
}

// ParsedStatus returns the validated status. Call Validate first.
func (r *UpdateStatusRequest) ParsedStatus() project.Status {
	s, _ := project.ParseStatus(r.Status)
	return s
}
