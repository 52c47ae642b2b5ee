package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/domain"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

const (
	maxJSONBodyBytes = 1 << 20
	maxFormBodyBytes = 4 << 10
)

var errMalformedForm = bodyError("invalid form encoding")

func bodyError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body",
			slog.Any("error", err),
		)
	}
}

// readJSON decodes exactly one JSON value from the capped request body.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return bodyError("request body too large")
		}
		return bodyError("invalid JSON")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return bodyError("unexpected data after JSON value")
	}
	return nil
}

type validatable interface {
	Validate() error
}

// bind reads and validates a request DTO, answering with a problem when
// either step fails.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := readJSON(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteProblem(w, r, err)
		return false
	}
	return true
}
