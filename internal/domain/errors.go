package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrNotFound marks a lookup with no match, such as an unknown route.
	ErrNotFound = errors.New("not found")
	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")
)

// ValidationError maps input field names to the message that rejected them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, name := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(name + ": " + e.Fields[name])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
