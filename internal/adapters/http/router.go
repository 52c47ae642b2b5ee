// Package http is the inbound HTTP adapter: routing, the middleware chain
// and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/agecalc/internal/domain"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Page   *handlers.PageHandler
	Age    *handlers.AgeHandler
	Health *handlers.HealthHandler
}

// NewRouter mounts routes behind middlewares, outermost first. Unknown
// paths and methods are answered with problem responses.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middlewares...)

	mux.NotFound(notFound)
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatus(w, r, http.StatusMethodNotAllowed)
	})

	mux.Route("/health", func(r chi.Router) {
		r.Get("/live", routes.Health.Liveness)
		r.Get("/ready", routes.Health.Readiness)
	})

	mux.Get("/", routes.Page.Show)
	mux.Post("/", routes.Page.Submit)

	mux.Post("/api/v1/age", routes.Age.Calculate)
	mux.Post("/api/v1/age/batch", routes.Age.CalculateBatch)

	return mux
}

func notFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, fmt.Errorf("no route for %s: %w", r.URL.Path, domain.ErrNotFound))
}
