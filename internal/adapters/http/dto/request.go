package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/agecalc/internal/domain"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// FieldText is the raw text of one form field. It decodes from a JSON string,
// a JSON integer (written back as its decimal digits) or null (empty).
type FieldText string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FieldText) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FieldText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("field must be a string or a number: %w", err)
	}
	*f = FieldText(n.String())
	return nil
}

// AgeRequest represents the JSON body for POST /api/v1/age.
type AgeRequest struct {
	Day   FieldText `json:"day"`
	Month FieldText `json:"month"`
	Year  FieldText `json:"year"`
}

// Validate always succeeds: field contents are judged by the form itself so
// that the response carries the same messages the page shows.
func (r *AgeRequest) Validate() error {
	return nil
}

// ToInput converts the request to the service's input type.
func (r *AgeRequest) ToInput() ports.AgeInput {
	return ports.AgeInput{
		Day:   string(r.Day),
		Month: string(r.Month),
		Year:  string(r.Year),
	}
}

// AgeBatchRequest represents the JSON body for POST /api/v1/age/batch.
type AgeBatchRequest struct {
	Items []AgeRequest `json:"items"`
}

// Validate checks that the items member is present and non-empty. The upper
// bound is enforced by the service, which owns the configured limit.
func (r *AgeBatchRequest) Validate() error {
	if len(r.Items) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"items": "must not be empty"}}
	}
	return nil
}

// ToInputs converts every item to the service's input type, in order.
func (r *AgeBatchRequest) ToInputs() []ports.AgeInput {
	inputs := make([]ports.AgeInput, len(r.Items))
	for i := range r.Items {
		inputs[i] = r.Items[i].ToInput()
	}
	return inputs
}
