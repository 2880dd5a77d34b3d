package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/projectboard/internal/adapters/http"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/state"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/health"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// provide registers every constructor. Nothing is built until the server is
// invoked.
func provide(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	// One state per process, alive until exit.
	do.Provide(injector, func(_ do.Injector) (*state.ProjectState, error) {
		return state.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return app.NewBoardService(
			do.MustInvoke[*state.ProjectState](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*web.Renderer, error) {
		return web.NewRenderer()
	})

	do.Provide(injector, func(i do.Injector) ([]*web.ProjectList, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		renderer := do.MustInvoke[*web.Renderer](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		lists := make([]*web.ProjectList, 0, len(project.Statuses))
		for _, kind := range project.Statuses {
			list, err := web.NewProjectList(context.Background(), svc, kind, renderer,
				web.WithMaxWatchers(cfg.Board.MaxWatchers),
				web.WithMetrics(metrics),
				web.WithLogger(logger),
			)
			if err != nil {
				return nil, fmt.Errorf("creating %s list: %w", kind, err)
			}
			lists = append(lists, list)
		}
		return lists, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		lists := do.MustInvoke[[]*web.ProjectList](i)
		page := web.NewPage(do.MustInvoke[*web.Renderer](i), lists...)
		return handlers.NewBoardHandler(svc, page, web.NewProjectInput(svc), lists, cfg.Board.SSEKeepAlive), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.ProjectHandler](i),
			do.MustInvoke[*handlers.BoardHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			cfg.Server.WriteTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
