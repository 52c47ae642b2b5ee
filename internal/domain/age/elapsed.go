package age

import "time"

// Fixed divisors of the elapsed-time approximation. Month lengths and leap
// years are ignored, so results drift from true calendar
// arithmetic by a few days over long spans.
const (
	DaysPerYear  = 365
	DaysPerMonth = 30
)

// Elapsed is the time between a birth date and now expressed as years,
// months and days under the fixed-divisor approximation.
type Elapsed struct {
	Years  int
	Months int
	Days   int
}

// TotalDays folds the triple back into a day count.
func (e Elapsed) TotalDays() int {
	return e.Years*DaysPerYear + e.Months*DaysPerMonth + e.Days
}

// SplitDays converts a whole-day count into an Elapsed triple.
func SplitDays(total int) Elapsed {
	rem := total % DaysPerYear
	return Elapsed{
		Years:  total / DaysPerYear,
		Months: rem / DaysPerMonth,
		Days:   rem % DaysPerMonth,
	}
}

// Calculate returns the elapsed time from date to now. The boolean is false
// when the date is incomplete. Dates after now clamp to zero; validation
// keeps those from reaching here.
func Calculate(date CandidateDate, now time.Time) (Elapsed, bool) {
	if !date.Complete() {
		return Elapsed{}, false
	}
	total := date.DaysBefore(now)
	if total < 0 {
		total = 0
	}
	return SplitDays(total), true
}
