package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/agecalc/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name: "fields in name order",
			fields: map[string]string{
				"year":  "This field is required",
				"day":   "Must be a valid date",
				"month": "Must be a valid month",
			},
			want: "validation failed: day: Must be a valid date; month: Must be a valid month; year: This field is required",
		},
		{
			name:   "single field",
			fields: map[string]string{"items": "at least one item is required"},
			want:   "validation failed: items: at least one item is required",
		},
		{
			name: "no fields",
			want: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("submitting: %w", &domain.ValidationError{Fields: tt.fields})

			if got := errors.Unwrap(err).Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false, want true")
			}
			if errors.Is(err, domain.ErrNotFound) {
				t.Error("errors.Is(err, ErrNotFound) = true, want false")
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || len(verr.Fields) != len(tt.fields) {
				t.Errorf("errors.As() = %v, want the original fields", verr)
			}
		})
	}
}
