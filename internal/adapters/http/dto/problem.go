package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/agecalc/internal/domain"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

const (
	problemType        = "about:blank"
	problemContentType = "application/problem+json"

	// Server-side failures never echo the underlying error to the client.
	internalDetail = "the server could not complete the request"
)

// Problem is an RFC 9457 problem details body.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem locates one rejected input field.
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewProblem describes err for the client. Validation errors carry their
// fields; 500 responses carry a fixed detail.
func NewProblem(r *http.Request, err error) Problem {
	p := statusProblem(r, StatusFor(err))
	if p.Status == http.StatusInternalServerError {
		p.Detail = internalDetail
	} else {
		p.Detail = err.Error()
	}
	p.Errors = FieldProblems(err)
	return p
}

// StatusFor maps an error chain to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// FieldProblems lists the fields of a *domain.ValidationError in err's
// chain, ordered by location. It returns nil for any other error.
func FieldProblems(err error) []FieldProblem {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	out := make([]FieldProblem, 0, len(verr.Fields))
	for name, msg := range verr.Fields {
		out = append(out, FieldProblem{Location: "body." + name, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldProblem) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

// WriteProblem reports err as a problem response. Errors that map to 500
// are logged with the request-scoped logger.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)
	if p.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
		)
	}
	encodeProblem(w, r, p)
}

// WriteStatus writes a problem for a bare status, such as an unknown method.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int) {
	encodeProblem(w, r, statusProblem(r, status))
}

func statusProblem(r *http.Request, status int) Problem {
	return Problem{
		Type:     problemType,
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.RequestURI(),
	}
}

func encodeProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing problem body",
			slog.Any("error", err),
		)
	}
}
