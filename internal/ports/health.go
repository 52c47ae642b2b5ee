package ports

import "context"

// HealthChecker is a component that takes part in readiness. The server
// registers the clock and the page renderer.
type HealthChecker interface {
	// Name keys the checker's result, e.g. "clock".
	Name() string

	// HealthCheck returns nil when the component can serve requests.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them on each
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
