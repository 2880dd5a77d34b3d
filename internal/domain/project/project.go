// Package project holds the board's Project entity and its status enumeration.
package project

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Form constraints for a new project, enforced by the service and the API.
const (
	MinDescriptionLength = 5
	MinPeople            = 1
	MaxPeople            = 5
)

// Project is a single entry on the board. ID is assigned once by New and
// never changes; Status changes only through the state store's transition.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}

// New builds an active project with a fresh identifier. IDs come from a
// random UUID and are not guaranteed unique by contract.
func New(title, description string, people int, now time.Time) Project {
	return Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
		CreatedAt:   now,
	}
}

// PeopleLabel returns the list item text for the assigned people count.
func (p *Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person assigned"
	}
	return strconv.Itoa(p.People) + " persons assigned"
}

// FilterByStatus returns the projects with the given status, preserving
// input order. The result never aliases the input slice.
func FilterByStatus(projects []Project, s Status) []Project {
	out := make([]Project, 0, len(projects))
	for i := range projects {
		if projects[i].Status == s {
			out = append(out, projects[i])
		}
	}
	return out
}
