package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const (
	contentTypeHTML        = "text/html; charset=utf-8"
	contentTypeEventStream = "text/event-stream"

	// sseEventList names the event carrying a re-rendered list fragment.
	sseEventList = "list"

	defaultKeepAlive = 15 * time.Second
)

// BoardHandler serves the server-rendered board: the page, form submits,
// drops, list fragments, and the live list streams.
type BoardHandler struct {
	svc       ports.BoardService
	page      *web.Page
	form      *web.ProjectInput
	lists     map[project.Status]*web.ProjectList
	keepAlive time.Duration
	static    http.Handler
}

// NewBoardHandler creates a BoardHandler. A non-positive keepAlive uses the
// default interval.
func NewBoardHandler(
	svc ports.BoardService,
	page *web.Page,
	form *web.ProjectInput,
	lists []*web.ProjectList,
	keepAlive time.Duration,
) *BoardHandler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	byKind := make(map[project.Status]*web.ProjectList, len(lists))
	for _, l := range lists {
		byKind[l.Kind()] = l
	}
	return &BoardHandler{
		svc:       svc,
		page:      page,
		form:      form,
		lists:     byKind,
		keepAlive: keepAlive,
		static:    http.StripPrefix("/static/", http.FileServerFS(web.Static())),
	}
}

// Page handles GET /.
func (h *BoardHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, web.FormView{})
}

// SubmitProject handles POST /projects. Script clients (Accept: application/json)
// get 201 with the project or a problem with the generic message. The plain
// form post is redirected back to the board, or re-rendered with the
// submitted values when rejected.
func (h *BoardHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	p, view, err := h.form.Submit(r.Context(), h.form.Gather(r))
	if err != nil {
		if wantsJSON(r) {
			if errors.Is(err, domain.ErrValidation) {
				dto.WriteErrorResponseDetail(w, r, err, web.MsgInvalidInput)
				return
			}
			dto.WriteErrorResponse(w, r, err)
			return
		}
		h.renderPage(w, r, dto.StatusFor(err), view)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, dto.ToProjectResponse(p))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// MoveProject handles POST /projects/{id}/status, the drop target. The body
// is a form with the destination list in "status". A drop naming an unknown
// project is ignored.
func (h *BoardHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !parseForm(w, r) {
		return
	}
	status, err := project.ParseStatus(r.PostFormValue("status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.svc.TransitionStatus(r.Context(), id, status); err != nil && !errors.Is(err, domain.ErrNotFound) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListFragment handles GET /lists/{type}.
func (h *BoardHandler) ListFragment(w http.ResponseWriter, r *http.Request) {
	list, err := h.list(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, string(list.Fragment()))
}

// Events handles GET /events/{type}. It streams the list's current fragment
// and every re-render after it as "list" events, with keep-alive comments in
// between, until the client goes away or the list closes.
func (h *BoardHandler) Events(w http.ResponseWriter, r *http.Request) {
	list, err := h.list(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updates, stop, err := list.Watch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer stop()

	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logging.FromContext(r.Context()).Warn("clearing write deadline", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", contentTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case fragment, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(w, sseEventList, fragment); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// Static serves the embedded browser assets under /static/.
func (h *BoardHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

func (h *BoardHandler) list(r *http.Request) (*web.ProjectList, error) {
	status, err := pathStatus(r, "type")
	if err != nil {
		return nil, err
	}
	list, ok := h.lists[status]
	if !ok {
		return nil, fmt.Errorf("list %q: %w", status, domain.ErrNotFound)
	}
	return list, nil
}

// renderPage renders the whole document before writing anything so a
// template failure still yields a clean 500.
func (h *BoardHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, form web.FormView) {
	var buf bytes.Buffer
	if err := h.page.Render(&buf, form); err != nil {
		logging.FromContext(r.Context()).Error("rendering board page", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// writeEvent writes one server-sent event. Every line of data gets its own
// data field so multi-line fragments survive the framing.
func writeEvent(w io.Writer, event string, data []byte) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteByte('\n')
	for line := range strings.SplitSeq(string(data), "\n") {
		b.WriteString("data: ")
		b.WriteString(strings.TrimSuffix(line, "\r"))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
