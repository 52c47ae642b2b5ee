package ports

import (
	"context"

	"github.com/jsamuelsen11/agecalc/internal/domain/age"
)

// AgeInput carries the raw text of the three entry fields exactly as the user
// typed them. Texts that are not digit-only or exceed a field's maximum
// length are ignored, leaving that field unset.
type AgeInput struct {
	Day   string
	Month string
	Year  string
}

// AgeService defines the service port for the age calculator.
// Implemented by the application layer; called by inbound adapters.
type AgeService interface {
	// Blank returns the form fields in their initial, never-submitted state.
	Blank() []age.FieldSpec

	// Submit applies the raw texts to a fresh form and submits it. Validation
	// failures are reported inside the Submission, not as an error; the error
	// is non-nil only when ctx is already done.
	Submit(ctx context.Context, in AgeInput) (age.Submission, error)

	// SubmitBatch submits each input on its own form, concurrently, and
	// returns the submissions in input order. Every submission is judged
	// against the same instant. Returns domain.ErrValidation when the batch
	// is empty or larger than the configured limit.
	SubmitBatch(ctx context.Context, inputs []AgeInput) ([]age.Submission, error)
}
