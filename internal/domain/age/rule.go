package age

import "time"

// Validation messages. A field shows at most one of these at a time.
const (
	MsgRequired     = "This field is required"
	MsgInvalidDay   = "Must be a valid day"
	MsgInvalidDate  = "Must be a valid date"
	MsgInvalidMonth = "Must be a valid month"
	MsgInvalidYear  = "Must be a valid year"
	MsgNotInPast    = "Must be in the past"
)

// RuleKind tags which input a Rule inspects.
type RuleKind int

const (
	// SingleField rules see only the raw value of the field under test.
	SingleField RuleKind = iota + 1
	// CrossField rules see the whole CandidateDate and the current moment.
	CrossField
)

// String implements fmt.Stringer.
func (k RuleKind) String() string {
	switch k {
	case SingleField:
		return "single-field"
	case CrossField:
		return "cross-field"
	default:
		return "unknown"
	}
}

// Rule is one validation step with a fixed failure message. Exactly one of
// the check functions is populated, matching Kind.
type Rule struct {
	Kind    RuleKind
	Message string

	field  func(Value) bool
	fields func(CandidateDate, time.Time) bool
}

// FieldRule returns a single-field rule.
func FieldRule(message string, check func(Value) bool) Rule {
	return Rule{Kind: SingleField, Message: message, field: check}
}

// DateRule returns a cross-field rule.
func DateRule(message string, check func(CandidateDate, time.Time) bool) Rule {
	return Rule{Kind: CrossField, Message: message, fields: check}
}

// Passes evaluates the rule. value is the raw value of the field the rule is
// attached to; date holds the in-progress values of all fields. A Rule with an
// unknown kind or a missing check never passes.
func (r Rule) Passes(value Value, date CandidateDate, now time.Time) bool {
	switch r.Kind {
	case SingleField:
		return r.field != nil && r.field(value)
	case CrossField:
		return r.fields != nil && r.fields(date, now)
	default:
		return false
	}
}

func required(v Value) bool {
	return v.IsSet()
}

func between(lo, hi int) func(Value) bool {
	return func(v Value) bool {
		n, ok := v.Get()
		return ok && n >= lo && n <= hi
	}
}

func positive(v Value) bool {
	n, ok := v.Get()
	return ok && n > 0
}

// realDate passes when any component is unset; otherwise the triple must be
// a real calendar day.
func realDate(c CandidateDate, _ time.Time) bool {
	if !c.Complete() {
		return true
	}
	return c.IsCalendarDate()
}

// yearNotAhead rejects a partial date whose year is beyond the current one.
func yearNotAhead(c CandidateDate, now time.Time) bool {
	if c.Day.IsSet() && c.Month.IsSet() {
		return true
	}
	y, ok := c.Year.Get()
	return !ok || y <= now.Year()
}

// dayInPast requires the full date to lie at least one whole day before now.
// It passes while day or month is unset.
func dayInPast(c CandidateDate, now time.Time) bool {
	if !c.Day.IsSet() || !c.Month.IsSet() {
		return true
	}
	if !c.Year.IsSet() {
		return true
	}
	return c.DaysBefore(now) > 0
}

// DayRules returns the ordered rules for the day field.
func DayRules() []Rule {
	return []Rule{
		FieldRule(MsgRequired, required),
		FieldRule(MsgInvalidDay, between(1, 31)),
		DateRule(MsgInvalidDate, realDate),
	}
}

// MonthRules returns the ordered rules for the month field.
func MonthRules() []Rule {
	return []Rule{
		FieldRule(MsgRequired, required),
		FieldRule(MsgInvalidMonth, between(1, 12)),
	}
}

// YearRules returns the ordered rules for the year field.
func YearRules() []Rule {
	return []Rule{
		FieldRule(MsgRequired, required),
		FieldRule(MsgInvalidYear, positive),
		DateRule(MsgNotInPast, yearNotAhead),
		DateRule(MsgNotInPast, dayInPast),
	}
}
