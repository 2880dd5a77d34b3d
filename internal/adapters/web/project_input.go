package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// MsgInvalidInput is the only message a rejected form ever shows.
const MsgInvalidInput = "Invalid input, please try again!"

// Form field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// ProjectInput is the project form component. It gathers the raw field
// values and hands them to the board, which validates them as a whole.
type ProjectInput struct {
	svc ports.BoardService
}

// NewProjectInput creates the form component.
func NewProjectInput(svc ports.BoardService) *ProjectInput {
	return &ProjectInput{svc: svc}
}

// Gather reads the submitted field values as-is.
func (f *ProjectInput) Gather(r *http.Request) FormView {
	return FormView{
		Title:       r.PostFormValue(FieldTitle),
		Description: r.PostFormValue(FieldDescription),
		People:      r.PostFormValue(FieldPeople),
	}
}

// Submit creates a project from form. On success the returned view is
// empty, which clears the form. On rejected input the returned view keeps
// the submitted values and carries MsgInvalidInput.
func (f *ProjectInput) Submit(ctx context.Context, form FormView) (*project.Project, FormView, error) {
	p, err := f.svc.CreateProject(ctx, ports.ProjectInput{
		Title:       form.Title,
		Description: form.Description,
		People:      form.People,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			form.Message = MsgInvalidInput
		}
		return nil, form, err
	}
	return p, FormView{}, nil
}
