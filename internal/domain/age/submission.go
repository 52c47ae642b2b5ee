package age

import (
	"maps"
	"time"
)

// Submission is an immutable record of one submit: the field values and
// messages as validated, and the result when validation passed.
type Submission struct {
	at      time.Time
	fields  []FieldSpec
	outcome Outcome
	result  Elapsed
	ok      bool
}

// NewSubmission snapshots fields, attaching the outcome's messages to them.
// Messages already present on fields are discarded. The result is kept only
// when the outcome carries no errors.
func NewSubmission(at time.Time, fields []FieldSpec, outcome Outcome, result Elapsed) Submission {
	snap := make([]FieldSpec, len(fields))
	for i, f := range fields {
		f.Rules = append([]Rule(nil), f.Rules...)
		f.Error = outcome.Message(f.ID)
		snap[i] = f
	}

	s := Submission{
		at:      at,
		fields:  snap,
		outcome: maps.Clone(outcome),
	}
	if s.outcome == nil {
		s.outcome = Outcome{}
	}
	if !outcome.HasErrors() {
		s.result = result
		s.ok = true
	}
	return s
}

// At returns the moment the submission was validated against.
func (s Submission) At() time.Time {
	return s.at
}

// Fields returns a copy of the validated fields with their messages.
func (s Submission) Fields() []FieldSpec {
	return append([]FieldSpec(nil), s.fields...)
}

// Field returns the snapshot of a single field.
func (s Submission) Field(id FieldID) (FieldSpec, bool) {
	for _, f := range s.fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Outcome returns a copy of the per-field validation messages.
func (s Submission) Outcome() Outcome {
	return maps.Clone(s.outcome)
}

// HasErrors reports whether any field failed validation.
func (s Submission) HasErrors() bool {
	return s.outcome.HasErrors()
}

// Result returns the elapsed time; the boolean is false when validation failed.
func (s Submission) Result() (Elapsed, bool) {
	return s.result, s.ok
}

// Err returns the validation failures as a *domain.ValidationError, or nil.
func (s Submission) Err() error {
	return s.outcome.Err()
}
