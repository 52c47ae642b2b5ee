package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/agecalc/internal/platform/config"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

const defaultShutdownTimeout = 15 * time.Second

// Server runs the router on a net/http server bound to the configured
// address.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	drain  time.Duration
}

// NewServer applies cfg's address and timeouts. The header read limit
// follows the read timeout and a zero ShutdownTimeout means 15s.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	drain := cfg.ShutdownTimeout
	if drain <= 0 {
		drain = defaultShutdownTimeout
	}
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		drain:  drain,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done or serving fails, then
// drains in-flight requests for at most the shutdown timeout. It returns nil
// after a clean drain.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("serving HTTP", slog.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
		defer cancel()

		s.logger.Info("draining HTTP server", slog.Duration("timeout", s.drain))
		if err := s.srv.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("draining http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// ReadHeaderTimeout returns the limit on reading request headers.
func (s *Server) ReadHeaderTimeout() time.Duration {
	return s.srv.ReadHeaderTimeout
}
