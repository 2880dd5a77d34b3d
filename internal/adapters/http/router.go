// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The request timeout
// wraps every route except the event streams, which stay open until the
// client leaves. A non-positive timeout disables it.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	boardHandler *handlers.BoardHandler,
	healthHandler *handlers.HealthHandler,
	timeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Live list streams (no request timeout).
	r.Get("/events/{type}", boardHandler.Events)

	r.Group(func(r chi.Router) {
		if timeout > 0 {
			r.Use(middleware.Timeout(timeout))
		}

		// Health endpoints (outside /api/v1 prefix).
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)

		// Board page and its form/drop targets.
		r.Get("/", boardHandler.Page)
		r.Post("/projects", boardHandler.SubmitProject)
		r.Post("/projects/{id}/status", boardHandler.MoveProject)
		r.Get("/lists/{type}", boardHandler.ListFragment)
		r.Get("/static/*", boardHandler.Static)

		// API v1 routes.
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/projects", projectHandler.ListProjects)
			r.Post("/projects", projectHandler.CreateProject)
			r.Get("/projects/{id}", projectHandler.GetProject)
			r.Patch("/projects/{id}/status", projectHandler.UpdateStatus)
		})
	})

	return r
}
