// Command server runs the age calculator web service: the HTML form at /,
// the JSON API under /api/v1 and the health probes. APP_PROFILE selects the
// configuration profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/agecalc/internal/adapters/http"
	"github.com/jsamuelsen11/agecalc/internal/platform/config"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/platform/telemetry"
)

const telemetryFlushTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("APP_PROFILE")); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, profile string) error {
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, prod or e2e)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	injector := newInjector(cfg, logger, providers.Metrics)
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	if err := registerHealthChecks(injector); err != nil {
		return fmt.Errorf("registering health checks: %w", err)
	}

	logger.Info("starting age calculator",
		slog.String("profile", profile),
		slog.Bool("fixed_clock", cfg.Clock.FixedNow != ""),
		slog.Bool("telemetry", providers.Enabled()),
	)

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
