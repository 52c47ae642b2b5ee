package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/agecalc/internal/adapters/http"
	"github.com/jsamuelsen11/agecalc/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/agecalc/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/agecalc/internal/adapters/http/web"
	"github.com/jsamuelsen11/agecalc/internal/app"
	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
	"github.com/jsamuelsen11/agecalc/internal/platform/config"
	"github.com/jsamuelsen11/agecalc/internal/platform/health"
	"github.com/jsamuelsen11/agecalc/internal/platform/telemetry"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// newInjector registers every provider. Nothing is built until the server
// is invoked. metrics may be nil.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (ports.Clock, error) {
		return clock.New(cfg.Clock.FixedNow)
	})
	do.Provide(injector, func(i do.Injector) (ports.AgeService, error) {
		limits := app.BatchLimits{MaxItems: cfg.Batch.MaxItems, Workers: cfg.Batch.Workers}
		return app.NewAgeService(do.MustInvoke[ports.Clock](i), logger, metrics, limits), nil
	})
	do.Provide(injector, func(_ do.Injector) (*web.Renderer, error) {
		return web.NewRenderer()
	})
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.RequestTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		return handlers.NewPageHandler(do.MustInvoke[ports.AgeService](i), do.MustInvoke[*web.Renderer](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.AgeHandler, error) {
		return handlers.NewAgeHandler(do.MustInvoke[ports.AgeService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := adapthttp.Routes{
			Page:   do.MustInvoke[*handlers.PageHandler](i),
			Age:    do.MustInvoke[*handlers.AgeHandler](i),
			Health: do.MustInvoke[*handlers.HealthHandler](i),
		}
		return adapthttp.NewRouter(routes, pipeline(cfg.Server, logger, metrics)...), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}

// pipeline lists the router middleware, outermost first.
func pipeline(cfg config.ServerConfig, logger *slog.Logger, metrics *telemetry.Metrics) []func(nethttp.Handler) nethttp.Handler {
	mws := []func(nethttp.Handler) nethttp.Handler{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(metrics),
		middleware.Logging(logger),
	}
	if cfg.RequestTimeout > 0 {
		mws = append(mws, middleware.Timeout(cfg.RequestTimeout))
	}
	return mws
}

// registerHealthChecks adds the readiness checkers once the graph is built.
func registerHealthChecks(i do.Injector) error {
	registry, err := do.Invoke[ports.HealthRegistry](i)
	if err != nil {
		return err
	}
	clk, err := do.Invoke[ports.Clock](i)
	if err != nil {
		return err
	}
	renderer, err := do.Invoke[*web.Renderer](i)
	if err != nil {
		return err
	}

	registry.Register(clock.Checker{Clock: clk})
	registry.Register(renderer)
	return nil
}
