package project

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Parallel()

	p := New("Build API", "Design and implement", 3, testTime)

	if p.ID == "" {
		t.Fatal("New() ID is empty")
	}
	if p.Status != StatusActive {
		t.Errorf("New() Status = %q, want %q", p.Status, StatusActive)
	}
	if p.Title != "Build API" || p.Description != "Design and implement" || p.People != 3 {
		t.Errorf("New() fields = %+v", p)
	}
	if !p.CreatedAt.Equal(testTime) {
		t.Errorf("New() CreatedAt = %v, want %v", p.CreatedAt, testTime)
	}

	other := New("Build API", "Design and implement", 3, testTime)
	if other.ID == p.ID {
		t.Errorf("two New() calls returned the same ID %q", p.ID)
	}
}

func TestProject_PeopleLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		people int
		want   string
	}{
		{people: 1, want: "1 person assigned"},
		{people: 2, want: "2 persons assigned"},
		{people: 5, want: "5 persons assigned"},
	}

	for _, tt := range tests {
		p := Project{People: tt.people}
		if got := p.PeopleLabel(); got != tt.want {
			t.Errorf("PeopleLabel() with %d = %q, want %q", tt.people, got, tt.want)
		}
	}
}

func TestFilterByStatus(t *testing.T) {
	t.Parallel()

	projects := []Project{
		{ID: "a", Status: StatusActive},
		{ID: "b", Status: StatusFinished},
		{ID: "c", Status: StatusActive},
	}

	active := FilterByStatus(projects, StatusActive)
	if len(active) != 2 || active[0].ID != "a" || active[1].ID != "c" {
		t.Errorf("FilterByStatus(active) = %+v, want [a c] in order", active)
	}

	finished := FilterByStatus(projects, StatusFinished)
	if len(finished) != 1 || finished[0].ID != "b" {
		t.Errorf("FilterByStatus(finished) = %+v, want [b]", finished)
	}

	active[0].Title = "changed"
	if projects[0].Title != "" {
		t.Error("FilterByStatus result aliases the input slice")
	}

	if got := FilterByStatus(nil, StatusActive); len(got) != 0 {
		t.Errorf("FilterByStatus(nil) len = %d, want 0", len(got))
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "active is valid", status: StatusActive, want: true},
		{name: "finished is valid", status: StatusFinished, want: true},
		{name: "empty string is invalid", status: "", want: false},
		{name: "unknown value is invalid", status: "archived", want: false},
		{name: "case sensitive", status: "Active", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{raw: "active", want: StatusActive},
		{raw: " Finished ", want: StatusFinished},
		{raw: "", wantErr: true},
		{raw: "done", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("ParseStatus(%q) error = %v, want ErrValidation", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
