package state_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func newState() *state.ProjectState {
	return state.New(state.WithClock(func() time.Time { return testTime }))
}

// recorder collects every snapshot delivered to a subscriber.
type recorder struct {
	mu        sync.Mutex
	snapshots [][]project.Project
}

func (r *recorder) listen(projects []project.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, projects)
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *recorder) last() []project.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[len(r.snapshots)-1]
}

func TestAddProject(t *testing.T) {
	t.Parallel()
	s := newState()
	rec := &recorder{}
	s.Subscribe(rec.listen)

	p := s.AddProject("Build API", "Design and implement", 3)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, project.StatusActive, p.Status)
	assert.Equal(t, testTime, p.CreatedAt)
	assert.Equal(t, 1, s.Len())

	require.Equal(t, 1, rec.calls(), "exactly one notification per add")
	snap := rec.last()
	require.Len(t, snap, 1)
	assert.Equal(t, p, snap[0])
}

func TestAddProject_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	s := newState()

	first := s.AddProject("First", "first project", 1)
	second := s.AddProject("Second", "second project", 2)
	third := s.AddProject("Third", "third project", 3)

	got := s.Projects()
	require.Len(t, got, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSubscribe_NoReplay(t *testing.T) {
	t.Parallel()
	s := newState()
	s.AddProject("Existing", "added before subscribing", 2)

	rec := &recorder{}
	s.Subscribe(rec.listen)

	assert.Equal(t, 0, rec.calls())
}

func TestTransitionStatus(t *testing.T) {
	t.Parallel()
	s := newState()
	p := s.AddProject("Build API", "Design and implement", 3)

	rec := &recorder{}
	s.Subscribe(rec.listen)

	found := s.TransitionStatus(p.ID, project.StatusFinished)

	assert.True(t, found)
	assert.Equal(t, 1, s.Len())
	require.Equal(t, 1, rec.calls())

	snap := rec.last()
	assert.Empty(t, project.FilterByStatus(snap, project.StatusActive))
	finished := project.FilterByStatus(snap, project.StatusFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, "Build API", finished[0].Title)
	assert.Equal(t, p.ID, finished[0].ID)
}

func TestTransitionStatus_SameStatusStillNotifies(t *testing.T) {
	t.Parallel()
	s := newState()
	p := s.AddProject("Build API", "Design and implement", 3)

	rec := &recorder{}
	s.Subscribe(rec.listen)

	assert.True(t, s.TransitionStatus(p.ID, project.StatusActive))
	assert.Equal(t, 1, rec.calls())
	assert.Equal(t, project.StatusActive, rec.last()[0].Status)
}

func TestTransitionStatus_BackToActive(t *testing.T) {
	t.Parallel()
	s := newState()
	p := s.AddProject("Build API", "Design and implement", 3)

	s.TransitionStatus(p.ID, project.StatusFinished)
	s.TransitionStatus(p.ID, project.StatusActive)

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, project.StatusActive, got.Status)
}

func TestTransitionStatus_UnknownID(t *testing.T) {
	t.Parallel()
	s := newState()
	p := s.AddProject("Build API", "Design and implement", 3)

	rec := &recorder{}
	s.Subscribe(rec.listen)

	found := s.TransitionStatus("does-not-exist", project.StatusFinished)

	assert.False(t, found)
	assert.Equal(t, 1, rec.calls(), "unknown id still notifies once")
	assert.Equal(t, []project.Project{p}, s.Projects())
}

func TestSnapshotImmutability(t *testing.T) {
	t.Parallel()
	s := newState()

	var received []project.Project
	s.Subscribe(func(projects []project.Project) {
		received = projects
	})

	p := s.AddProject("Build API", "Design and implement", 3)

	received[0].Title = "tampered"
	received[0].Status = project.StatusFinished
	_ = append(received[:0], project.Project{ID: "injected"})

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Build API", got.Title)
	assert.Equal(t, project.StatusActive, got.Status)

	list := s.Projects()
	list[0].Title = "also tampered"
	got, _ = s.Get(p.ID)
	assert.Equal(t, "Build API", got.Title)
}

func TestSubscribe_EachListenerGetsOwnCopy(t *testing.T) {
	t.Parallel()
	s := newState()

	s.Subscribe(func(projects []project.Project) {
		projects[0].Title = "first listener edit"
	})
	second := &recorder{}
	s.Subscribe(second.listen)

	s.AddProject("Build API", "Design and implement", 3)

	assert.Equal(t, "Build API", second.last()[0].Title)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	t.Parallel()
	s := newState()
	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.listen)

	s.AddProject("One", "first project", 1)
	unsubscribe()
	unsubscribe()
	s.AddProject("Two", "second project", 2)

	assert.Equal(t, 1, rec.calls())
}

func TestReentrantMutationIsQueued(t *testing.T) {
	t.Parallel()
	s := newState()

	var (
		depth    int
		maxDepth int
		sizes    []int
	)
	s.Subscribe(func(projects []project.Project) {
		depth++
		defer func() { depth-- }()
		if depth > maxDepth {
			maxDepth = depth
		}
		sizes = append(sizes, len(projects))
		if len(projects) < 3 {
			s.AddProject("Follow-up", "added by a subscriber", 1)
		}
	})

	s.AddProject("Seed", "added by the test", 1)

	assert.Equal(t, 1, maxDepth, "subscriber must never be re-entered")
	assert.Equal(t, []int{1, 2, 3}, sizes)
	assert.Equal(t, 3, s.Len())
}

func TestConcurrentMutations(t *testing.T) {
	t.Parallel()
	s := newState()

	var (
		mu    sync.Mutex
		last  int
		calls int
	)
	s.Subscribe(func(projects []project.Project) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if len(projects) < last {
			t.Errorf("snapshot shrank from %d to %d", last, len(projects))
		}
		last = len(projects)
	})

	const writers = 20
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.AddProject("Concurrent", "added concurrently", 2)
			s.TransitionStatus(p.ID, project.StatusFinished)
		}()
	}
	wg.Wait()

	// A final mutation from this goroutine drains anything still queued.
	s.TransitionStatus("flush", project.StatusActive)

	assert.Equal(t, writers, s.Len())
	assert.Len(t, project.FilterByStatus(s.Projects(), project.StatusFinished), writers)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2*writers+1, calls)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	s := newState()
	assert.Equal(t, "project-state", s.Name())
	assert.NoError(t, s.HealthCheck(t.Context()))
}

func TestPanickingListenerDoesNotWedgeDelivery(t *testing.T) {
	t.Parallel()
	s := newState()

	panicked := false
	s.Subscribe(func(_ []project.Project) {
		if !panicked {
			panicked = true
			panic("boom")
		}
	})
	rec := &recorder{}
	s.Subscribe(rec.listen)

	assert.Panics(t, func() { s.AddProject("One", "first project", 1) })

	s.AddProject("Two", "second project", 2)

	require.Equal(t, 1, rec.calls())
	assert.Len(t, rec.last(), 2)
}
