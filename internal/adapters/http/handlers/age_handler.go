package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// AgeHandler handles the JSON age calculation endpoints.
type AgeHandler struct {
	svc ports.AgeService
}

// NewAgeHandler creates a new AgeHandler with the given service port.
func NewAgeHandler(svc ports.AgeService) *AgeHandler {
	return &AgeHandler{svc: svc}
}

// Calculate handles POST /api/v1/age. A submission that fails validation is
// answered with a 400 problem document listing each failing field.
func (h *AgeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.AgeRequest
	if !bind(w, r, &req) {
		return
	}

	sub, err := h.svc.Submit(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	resp, ok := dto.ToAgeResponse(sub)
	if !ok {
		dto.WriteProblem(w, r, sub.Err())
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// CalculateBatch handles POST /api/v1/age/batch. Per-item validation failures
// are reported inside the 200 response; only a malformed, empty or oversized
// batch is rejected as a whole.
func (h *AgeHandler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.AgeBatchRequest
	if !bind(w, r, &req) {
		return
	}

	subs, err := h.svc.SubmitBatch(r.Context(), req.ToInputs())
	if err != nil {
		dto.WriteProblem(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToAgeBatchResponse(subs))
}
