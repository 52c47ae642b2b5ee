package dto

import (
	"maps"
	"slices"
)

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthFailing  = "failing"
)

// HealthResponse is the body of both health endpoints. Checks is omitted on
// liveness.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks,omitempty"`
}

// HealthCheck is one checker's outcome.
type HealthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewReadinessResponse orders results by checker name and reports whether
// every check passed.
func NewReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		check := HealthCheck{Name: name, Status: HealthOK}
		if err := results[name]; err != nil {
			check.Status = HealthFailing
			check.Error = err.Error()
			resp.Status = HealthNotReady
		}
		resp.Checks = append(resp.Checks, check)
	}
	return resp, resp.Status == HealthReady
}
