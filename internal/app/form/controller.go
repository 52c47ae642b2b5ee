// Package form implements the age calculator's form state controller: it owns
// the three entry fields, accepts keystroke-level edits, and on submit runs
// validation and the elapsed-time calculation.
//
// A Controller is a single-owner state machine:
//
//	c := form.New(clk)
//	c.Edit(age.FieldDay, "15")
//	c.Edit(age.FieldMonth, "6")
//	c.Edit(age.FieldYear, "2000")
//	sub := c.Submit()
//
// It is not safe for concurrent use. Inbound adapters create one per
// request or per terminal session.
package form

import (
	"strconv"

	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// State is the controller's observable state.
type State int

const (
	// StateEditing covers both "never submitted" and "edited since the last submit".
	StateEditing State = iota
	// StateError means the last submit left at least one field in error.
	StateError
	// StateSuccess means the last submit produced a result.
	StateSuccess
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Controller holds the form fields, the last result and the global error flag.
type Controller struct {
	clock  ports.Clock
	fields []age.FieldSpec
	state  State

	result    age.Elapsed
	hasResult bool
	hasError  bool

	last      age.Submission
	submitted bool
}

// New creates a Controller with empty fields. clock supplies "now" for every
// submit.
func New(clock ports.Clock) *Controller {
	return &Controller{
		clock:  clock,
		fields: age.NewFields(),
		state:  StateEditing,
	}
}

// Edit applies raw text typed into a field. The text is accepted only when it
// fits the field's maximum length and is made of decimal digits; an empty
// text clears the field. Anything else is ignored and the field keeps its
// previous value. Edit never validates and never clears a previous result.
// It reports whether the text was accepted.
func (c *Controller) Edit(id age.FieldID, text string) bool {
	f := c.field(id)
	if f == nil {
		return false
	}

	v, ok := Normalize(text, f.MaxLength)
	if !ok {
		return false
	}

	f.Value = v
	c.state = StateEditing
	return true
}

// Submit clears every field's previous message, validates the current
// values and, when all fields pass, computes the elapsed time. The returned
// Submission is an immutable snapshot of this attempt.
func (c *Controller) Submit() age.Submission {
	now := c.clock.Now()

	fields := make([]age.FieldSpec, len(c.fields))
	for i, f := range c.fields {
		f.Error = ""
		fields[i] = f
	}

	outcome := age.Validate(fields, now)

	var result age.Elapsed
	if !outcome.HasErrors() {
		result, _ = age.Calculate(age.CandidateOf(fields), now)
	}

	sub := age.NewSubmission(now, fields, outcome, result)

	c.fields = sub.Fields()
	c.last = sub
	c.submitted = true
	c.hasError = sub.HasErrors()
	c.result, c.hasResult = sub.Result()

	if c.hasError {
		c.state = StateError
	} else {
		c.state = StateSuccess
	}

	return sub
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Fields returns a copy of the fields with their current values and the
// messages left by the last submit.
func (c *Controller) Fields() []age.FieldSpec {
	return append([]age.FieldSpec(nil), c.fields...)
}

// Field returns a copy of a single field.
func (c *Controller) Field(id age.FieldID) (age.FieldSpec, bool) {
	if f := c.field(id); f != nil {
		return *f, true
	}
	return age.FieldSpec{}, false
}

// Result returns the result of the last successful submit. It stays
// available through later edits until the next submit replaces or clears it.
func (c *Controller) Result() (age.Elapsed, bool) {
	return c.result, c.hasResult
}

// HasError reports the global error flag set by the last submit.
func (c *Controller) HasError() bool {
	return c.hasError
}

// Last returns the most recent submission, if any.
func (c *Controller) Last() (age.Submission, bool) {
	return c.last, c.submitted
}

func (c *Controller) field(id age.FieldID) *age.FieldSpec {
	for i := range c.fields {
		if c.fields[i].ID == id {
			return &c.fields[i]
		}
	}
	return nil
}

// Normalize turns raw input text into a field value. Empty text yields an
// unset value. Text longer than maxLength or containing anything other than
// ASCII digits is rejected.
func Normalize(text string, maxLength int) (age.Value, bool) {
	if text == "" {
		return age.Value{}, true
	}
	if len(text) > maxLength {
		return age.Value{}, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return age.Value{}, false
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return age.Value{}, false
	}
	return age.Int(n), true
}
