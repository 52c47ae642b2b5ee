package age

import "time"

const secondsPerDay = 24 * 60 * 60

// CandidateDate is the day/month/year triple under validation. Any component
// may be unset.
type CandidateDate struct {
	Day   Value
	Month Value
	Year  Value
}

// CandidateOf builds a CandidateDate from the current values of fields.
// Fields missing from the slice stay unset.
func CandidateOf(fields []FieldSpec) CandidateDate {
	var c CandidateDate
	for _, f := range fields {
		switch f.ID {
		case FieldDay:
			c.Day = f.Value
		case FieldMonth:
			c.Month = f.Value
		case FieldYear:
			c.Year = f.Value
		}
	}
	return c
}

// Complete reports whether day, month and year are all set.
func (c CandidateDate) Complete() bool {
	return c.Day.IsSet() && c.Month.IsSet() && c.Year.IsSet()
}

// civil returns the midnight UTC instant for the triple. Out-of-range
// components roll over the way time.Date normalizes them (31 April becomes
// 1 May). Callers must check Complete first.
func (c CandidateDate) civil() time.Time {
	d, _ := c.Day.Get()
	m, _ := c.Month.Get()
	y, _ := c.Year.Get()
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// IsCalendarDate reports whether the complete triple names a real calendar
// day, i.e. building the date and reading it back reproduces the triple.
func (c CandidateDate) IsCalendarDate() bool {
	if !c.Complete() {
		return false
	}
	d, _ := c.Day.Get()
	m, _ := c.Month.Get()
	y, _ := c.Year.Get()

	t := c.civil()
	return t.Day() == d && int(t.Month()) == m && t.Year() == y
}

// DaysBefore returns the number of whole days from the candidate to now,
// counted on the calendar of now's location. The result is negative when the
// candidate lies after now's calendar day. Callers must check Complete first.
func (c CandidateDate) DaysBefore(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int((today.Unix() - c.civil().Unix()) / secondsPerDay)
}
