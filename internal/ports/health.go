package ports

import "context"

// HealthChecker is a component the readiness probe reports on, such as the
// project state or a rendered list.
type HealthChecker interface {
	// Name identifies the component in the probe output, e.g. "list-active".
	Name() string
	// HealthCheck returns nil when healthy. It must honour ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker's name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
