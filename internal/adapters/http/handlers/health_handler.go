package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()))
	if ready {
		writeJSON(w, r, http.StatusOK, resp)
		return
	}

	for _, c := range resp.Checks {
		if c.Error != "" {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failing",
				slog.String("check", c.Name),
				slog.String("error", c.Error),
			)
		}
	}
	writeJSON(w, r, http.StatusServiceUnavailable, resp)
}
