package age

import (
	"sort"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/domain"
)

// Outcome maps each failing field to the message of its first failed rule.
// Fields that passed every rule are absent.
type Outcome map[FieldID]string

// HasErrors reports whether any field failed validation.
func (o Outcome) HasErrors() bool {
	return len(o) > 0
}

// Message returns the error message for id, or "" when the field is valid.
func (o Outcome) Message(id FieldID) string {
	return o[id]
}

// Err converts the outcome into a *domain.ValidationError keyed by field
// name, or nil when every field passed.
func (o Outcome) Err() error {
	if !o.HasErrors() {
		return nil
	}
	fields := make(map[string]string, len(o))
	for id, msg := range o {
		fields[id.String()] = msg
	}
	return &domain.ValidationError{Fields: fields}
}

// Failed returns the failing field IDs in field order.
func (o Outcome) Failed() []FieldID {
	ids := make([]FieldID, 0, len(o))
	for id := range o {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Validate runs every field's rules in declaration order and records the
// first failure per field. Cross-field rules see the current values of all
// fields, not only the one under test. The fields are not modified.
func Validate(fields []FieldSpec, now time.Time) Outcome {
	date := CandidateOf(fields)
	out := make(Outcome)

	for _, f := range fields {
		for _, rule := range f.Rules {
			if !rule.Passes(f.Value, date, now) {
				out[f.ID] = rule.Message
				break
			}
		}
	}

	return out
}
