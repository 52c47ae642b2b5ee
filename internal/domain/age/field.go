// Package age holds the age calculator's domain: the form fields, the ordered
// validation rules that guard them, and the elapsed-time calculation.
//
// Everything in this package is pure. The current moment is always passed in
// explicitly so callers (and tests) decide what "now" means.
package age

import "strconv"

// FieldID identifies one of the three date entry fields.
type FieldID int

const (
	FieldDay FieldID = iota
	FieldMonth
	FieldYear
)

// FieldIDs returns the fields in display and validation order.
func FieldIDs() []FieldID {
	return []FieldID{FieldDay, FieldMonth, FieldYear}
}

// ParseFieldID resolves a field name ("day", "month", "year").
func ParseFieldID(name string) (FieldID, bool) {
	switch name {
	case "day":
		return FieldDay, true
	case "month":
		return FieldMonth, true
	case "year":
		return FieldYear, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer.
func (f FieldID) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	default:
		return "unknown"
	}
}

// Value is an optional numeric field value. The zero Value is unset.
type Value struct {
	n   int
	set bool
}

// Int returns a set Value holding n.
func Int(n int) Value {
	return Value{n: n, set: true}
}

// Get returns the value and whether it is set.
func (v Value) Get() (int, bool) {
	return v.n, v.set
}

// IsSet reports whether the value holds a number.
func (v Value) IsSet() bool {
	return v.set
}

// String returns the decimal form of the value, or "" when unset.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.n)
}

// FieldSpec describes one entry field together with its current value and
// the message of its last failed validation, if any.
type FieldSpec struct {
	ID          FieldID
	Caption     string
	Placeholder string
	MaxLength   int
	Rules       []Rule
	Value       Value
	Error       string
}

// HasError reports whether the field currently carries an error message.
func (f FieldSpec) HasError() bool {
	return f.Error != ""
}

// NewFields returns the day, month and year fields with empty values and
// their rule lists attached.
func NewFields() []FieldSpec {
	return []FieldSpec{
		{
			ID:          FieldDay,
			Caption:     "day",
			Placeholder: "DD",
			MaxLength:   2,
			Rules:       DayRules(),
		},
		{
			ID:          FieldMonth,
			Caption:     "month",
			Placeholder: "MM",
			MaxLength:   2,
			Rules:       MonthRules(),
		},
		{
			ID:          FieldYear,
			Caption:     "year",
			Placeholder: "YYYY",
			MaxLength:   4,
			Rules:       YearRules(),
		},
	}
}
