package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

var (
	// ErrTooManyWatchers is returned by Watch when the list already serves
	// its configured maximum of streams.
	ErrTooManyWatchers = fmt.Errorf("too many list watchers: %w", domain.ErrUnavailable)

	// ErrListClosed is returned by Watch after Close.
	ErrListClosed = errors.New("project list closed")
)

// ListOption configures a ProjectList.
type ListOption func(*ProjectList)

// WithMaxWatchers caps the number of concurrent watchers. Zero means no cap.
func WithMaxWatchers(n int) ListOption {
	return func(l *ProjectList) {
		l.maxWatchers = n
	}
}

// WithMetrics records renders and watcher counts on m. Nil disables metrics.
func WithMetrics(m *telemetry.Metrics) ListOption {
	return func(l *ProjectList) {
		l.metrics = m
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(logger *slog.Logger) ListOption {
	return func(l *ProjectList) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// ProjectList renders the projects of a single status. It subscribes to the
// board at construction and, on every notification, filters the snapshot by
// its status and redraws the whole fragment in snapshot order. The fragment
// is the only thing it keeps; the board's state stays authoritative.
//
// Each new fragment is offered to every watcher. A watcher that has not yet
// consumed the previous fragment only ever sees the latest one.
type ProjectList struct {
	kind        project.Status
	renderer    *Renderer
	metrics     *telemetry.Metrics
	logger      *slog.Logger
	maxWatchers int
	unsubscribe func()

	mu       sync.RWMutex
	fragment []byte
	renders  uint64
	watchers map[chan []byte]struct{}
	closed   bool
}

// NewProjectList creates the list for kind and attaches it to svc.
func NewProjectList(
	ctx context.Context,
	svc ports.BoardService,
	kind project.Status,
	renderer *Renderer,
	opts ...ListOption,
) (*ProjectList, error) {
	if !kind.IsValid() {
		return nil, domain.FieldError("type", fmt.Sprintf("invalid: %q", kind))
	}

	l := &ProjectList{
		kind:     kind,
		renderer: renderer,
		logger:   slog.New(slog.DiscardHandler),
		watchers: make(map[chan []byte]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.unsubscribe = svc.Subscribe(l.render)

	projects, err := svc.ListProjects(ctx, nil)
	if err != nil {
		l.unsubscribe()
		return nil, fmt.Errorf("loading projects for %s list: %w", kind, err)
	}
	initial, err := l.build(projects)
	if err != nil {
		l.unsubscribe()
		return nil, err
	}

	l.mu.Lock()
	// A notification that raced the initial load carries newer data.
	if l.renders == 0 {
		l.fragment = initial
	}
	l.mu.Unlock()

	return l, nil
}

// Kind returns the status this list shows.
func (l *ProjectList) Kind() project.Status {
	return l.kind
}

// Fragment returns the most recently rendered HTML.
func (l *ProjectList) Fragment() template.HTML {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return template.HTML(l.fragment)
}

// Renders returns how many notifications the list has rendered.
func (l *ProjectList) Renders() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.renders
}

// Watch registers a stream of rendered fragments. The current fragment is
// available on the channel immediately. The returned stop func releases the
// watcher and is safe to call more than once. The channel is closed when the
// list is closed.
func (l *ProjectList) Watch() (<-chan []byte, func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, nil, ErrListClosed
	}
	if l.maxWatchers > 0 && len(l.watchers) >= l.maxWatchers {
		return nil, nil, ErrTooManyWatchers
	}

	ch := make(chan []byte, 1)
	ch <- l.fragment
	l.watchers[ch] = struct{}{}
	l.recordWatchers(1)

	var once sync.Once
	stop := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if _, ok := l.watchers[ch]; ok {
				delete(l.watchers, ch)
				l.recordWatchers(-1)
			}
		})
	}
	return ch, stop, nil
}

// Name identifies the list in health reports.
func (l *ProjectList) Name() string {
	return "list-" + l.kind.String()
}

// HealthCheck fails once the list has been closed.
func (l *ProjectList) HealthCheck(_ context.Context) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrListClosed
	}
	return nil
}

// Close detaches the list from the board and ends every watcher.
func (l *ProjectList) Close() {
	l.unsubscribe()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for ch := range l.watchers {
		close(ch)
		delete(l.watchers, ch)
		l.recordWatchers(-1)
	}
}

// render is the board listener.
func (l *ProjectList) render(projects []project.Project) {
	fragment, err := l.build(projects)
	if err != nil {
		l.logger.Error("rendering project list",
			slog.String("list", l.kind.String()),
			slog.Any("error", err),
		)
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.fragment = fragment
	l.renders++
	for ch := range l.watchers {
		offer(ch, fragment)
	}
	l.mu.Unlock()

	if l.metrics != nil {
		l.metrics.ListRenders.Add(context.Background(), 1,
			metric.WithAttributes(telemetry.AttrListType.String(l.kind.String())),
		)
	}
}

func (l *ProjectList) build(projects []project.Project) ([]byte, error) {
	var buf bytes.Buffer
	view := newListView(l.kind, project.FilterByStatus(projects, l.kind))
	if err := l.renderer.renderList(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recordWatchers must be called with l.mu held.
func (l *ProjectList) recordWatchers(delta int64) {
	if l.metrics == nil {
		return
	}
	l.metrics.ListWatchers.Add(context.Background(), delta,
		metric.WithAttributes(telemetry.AttrListType.String(l.kind.String())),
	)
}

// offer replaces whatever is buffered in ch with fragment without blocking.
// Callers serialize through the list mutex, so the only concurrent party is
// the reader.
func offer(ch chan []byte, fragment []byte) {
	select {
	case ch <- fragment:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- fragment:
	default:
	}
}
