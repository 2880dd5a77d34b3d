// Package state holds the board's single authoritative project collection
// and notifies subscribers with a snapshot copy after every mutation.
//
// Mutations are serialized by a mutex. Notifications are queued in mutation
// order and delivered by a drain loop: the goroutine that finds the queue idle
// delivers every pending snapshot before returning, so a caller that mutates
// from a single goroutine observes synchronous delivery. A subscriber that
// mutates the state while being notified does not recurse; its snapshot is
// queued and delivered after the current round.
package state

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// Listener receives a private copy of the full project collection, in
// insertion order. Mutating the slice has no effect on the state.
type Listener func(projects []project.Project)

type subscription struct {
	id uint64
	fn Listener
}

// Option configures a ProjectState.
type Option func(*ProjectState)

// WithClock overrides the time source used to stamp new projects.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectState) {
		s.now = now
	}
}

// ProjectState is the process-wide project collection. Projects are only ever
// appended and transitioned between statuses; nothing is deleted.
type ProjectState struct {
	mu        sync.Mutex
	projects  []project.Project
	listeners []subscription
	nextSubID uint64
	pending   [][]project.Project
	draining  bool
	now       func() time.Time
}

// New creates an empty ProjectState.
func New(opts ...Option) *ProjectState {
	s := &ProjectState{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject appends a new active project and notifies every subscriber.
func (s *ProjectState) AddProject(title, description string, people int) project.Project {
	s.mu.Lock()
	p := project.New(title, description, people, s.now())
	s.projects = append(s.projects, p)
	s.enqueueLocked()
	s.mu.Unlock()

	s.drain()
	return p
}

// TransitionStatus sets the status of the project with the given id. Subscribers
// are notified whether or not anything changed, including when id is unknown.
// It reports whether a project with that id exists.
func (s *ProjectState) TransitionStatus(id string, status project.Status) bool {
	s.mu.Lock()
	found := false
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		found = true
		if s.projects[i].Status != status {
			s.projects[i].Status = status
		}
		break
	}
	s.enqueueLocked()
	s.mu.Unlock()

	s.drain()
	return found
}

// Subscribe registers fn for every subsequent mutation. The current state is
// not replayed. The returned func removes the subscription; it is safe to
// call more than once.
func (s *ProjectState) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Projects returns a copy of the full collection in insertion order.
func (s *ProjectState) Projects() []project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// Get returns a copy of the project with the given id.
func (s *ProjectState) Get(id string) (project.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			return s.projects[i], true
		}
	}
	return project.Project{}, false
}

// Len returns the number of projects held.
func (s *ProjectState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

// Name identifies the state in readiness results.
func (s *ProjectState) Name() string {
	return "project-state"
}

// HealthCheck always succeeds; the state is in-process memory.
func (s *ProjectState) HealthCheck(_ context.Context) error {
	return nil
}

// enqueueLocked queues a snapshot of the current collection. Must be called
// with s.mu held.
func (s *ProjectState) enqueueLocked() {
	s.pending = append(s.pending, slices.Clone(s.projects))
}

// drain delivers queued snapshots in order unless another goroutine (or an
// outer frame of this one) is already doing so. The draining flag is cleared
// in the same critical section that observes the empty queue, so a snapshot
// queued by a concurrent mutation is never left behind.
func (s *ProjectState) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	for len(s.pending) > 0 {
		snapshot := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]
		listeners := slices.Clone(s.listeners)
		s.mu.Unlock()

		s.deliver(listeners, snapshot)

		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}

// deliver calls each listener with its own copy of snapshot. If a listener
// panics the draining flag is released before the panic propagates.
func (s *ProjectState) deliver(listeners []subscription, snapshot []project.Project) {
	completed := false
	defer func() {
		if !completed {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for _, sub := range listeners {
		sub.fn(slices.Clone(snapshot))
	}
	completed = true
}
