package age

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/agecalc/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

// fieldsWith returns fresh fields holding the given values. Pass a zero
// Value to leave a field unset.
func fieldsWith(day, month, year Value) []FieldSpec {
	fields := NewFields()
	fields[0].Value = day
	fields[1].Value = month
	fields[2].Value = year
	return fields
}

func TestValidate_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		day   Value
		month Value
		year  Value
		want  Outcome
	}{
		{
			name:  "valid past date",
			day:   Int(15),
			month: Int(6),
			year:  Int(2000),
			want:  Outcome{},
		},
		{
			name: "all fields empty",
			want: Outcome{
				FieldDay:   MsgRequired,
				FieldMonth: MsgRequired,
				FieldYear:  MsgRequired,
			},
		},
		{
			name:  "leap day in leap year",
			day:   Int(29),
			month: Int(2),
			year:  Int(2024),
			want:  Outcome{},
		},
		{
			name:  "leap day in common year",
			day:   Int(29),
			month: Int(2),
			year:  Int(2023),
			want:  Outcome{FieldDay: MsgInvalidDate},
		},
		{
			name:  "february thirtieth",
			day:   Int(30),
			month: Int(2),
			year:  Int(2020),
			want:  Outcome{FieldDay: MsgInvalidDate},
		},
		{
			name:  "day zero",
			day:   Int(0),
			month: Int(1),
			year:  Int(2000),
			want:  Outcome{FieldDay: MsgInvalidDay},
		},
		{
			name:  "day thirty two",
			day:   Int(32),
			month: Int(1),
			year:  Int(2000),
			want:  Outcome{FieldDay: MsgInvalidDay},
		},
		{
			name:  "month thirteen",
			day:   Int(1),
			month: Int(13),
			year:  Int(2000),
			// A set month takes part in the calendar round trip even when
			// out of range, so the day reports the impossible date too.
			want: Outcome{FieldDay: MsgInvalidDate, FieldMonth: MsgInvalidMonth},
		},
		{
			name:  "month zero",
			day:   Int(1),
			month: Int(0),
			year:  Int(2000),
			// A set month takes part in the calendar round trip even when
			// out of range, so the day reports the impossible date too.
			want: Outcome{FieldDay: MsgInvalidDate, FieldMonth: MsgInvalidMonth},
		},
		{
			name:  "year zero",
			day:   Int(1),
			month: Int(1),
			year:  Int(0),
			want:  Outcome{FieldYear: MsgInvalidYear},
		},
		{
			name:  "next year",
			day:   Int(1),
			month: Int(1),
			year:  Int(2025),
			want:  Outcome{FieldYear: MsgNotInPast},
		},
		{
			name: "next year with day and month unset",
			year: Int(2025),
			want: Outcome{
				FieldDay:   MsgRequired,
				FieldMonth: MsgRequired,
				FieldYear:  MsgNotInPast,
			},
		},
		{
			name:  "current year with day unset",
			month: Int(12),
			year:  Int(2024),
			want:  Outcome{FieldDay: MsgRequired},
		},
		{
			name:  "today is not in the past",
			day:   Int(15),
			month: Int(6),
			year:  Int(2024),
			want:  Outcome{FieldYear: MsgNotInPast},
		},
		{
			name:  "tomorrow is not in the past",
			day:   Int(16),
			month: Int(6),
			year:  Int(2024),
			want:  Outcome{FieldYear: MsgNotInPast},
		},
		{
			name:  "yesterday is in the past",
			day:   Int(14),
			month: Int(6),
			year:  Int(2024),
			want:  Outcome{},
		},
		{
			name:  "impossible date and future year both reported",
			day:   Int(31),
			month: Int(6),
			year:  Int(2030),
			want: Outcome{
				FieldDay:  MsgInvalidDate,
				FieldYear: MsgNotInPast,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Validate(fieldsWith(tt.day, tt.month, tt.year), testNow)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_ThirtyFirstOfAprilNeverValid(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1, 1900, 1999, 2000, 2020, 2023} {
		got := Validate(fieldsWith(Int(31), Int(4), Int(year)), testNow)
		if msg := got.Message(FieldDay); msg != MsgInvalidDate {
			t.Errorf("year %d: day message = %q, want %q", year, msg, MsgInvalidDate)
		}
	}
}

func TestValidate_EmptyYearOnlyReportsRequired(t *testing.T) {
	t.Parallel()

	combos := []struct{ day, month Value }{
		{},
		{Int(1), Value{}},
		{Value{}, Int(1)},
		{Int(31), Int(4)},
		{Int(15), Int(6)},
		{Int(99), Int(99)},
	}

	for _, c := range combos {
		got := Validate(fieldsWith(c.day, c.month, Value{}), testNow)
		if msg := got.Message(FieldYear); msg != MsgRequired {
			t.Errorf("day=%q month=%q: year message = %q, want %q",
				c.day, c.month, msg, MsgRequired)
		}
	}
}

func TestValidate_FutureYearRelativeToClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2031, 3, 3, 8, 0, 0, 0, time.UTC)
	got := Validate(fieldsWith(Int(1), Int(1), Int(now.Year()+1)), now)

	if msg := got.Message(FieldYear); msg != MsgNotInPast {
		t.Errorf("year message = %q, want %q", msg, MsgNotInPast)
	}
}

func TestValidate_DoesNotMutateFields(t *testing.T) {
	t.Parallel()

	fields := fieldsWith(Value{}, Value{}, Value{})
	_ = Validate(fields, testNow)

	for _, f := range fields {
		if f.Error != "" {
			t.Errorf("field %s Error = %q, want empty", f.ID, f.Error)
		}
	}
}

func TestOutcome_Err(t *testing.T) {
	t.Parallel()

	if err := (Outcome{}).Err(); err != nil {
		t.Fatalf("empty Outcome.Err() = %v, want nil", err)
	}

	err := Outcome{FieldDay: MsgInvalidDay, FieldYear: MsgRequired}.Err()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	want := map[string]string{"day": MsgInvalidDay, "year": MsgRequired}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestOutcome_FailedInFieldOrder(t *testing.T) {
	t.Parallel()

	o := Outcome{FieldYear: MsgRequired, FieldDay: MsgRequired}
	want := []FieldID{FieldDay, FieldYear}
	if diff := cmp.Diff(want, o.Failed()); diff != "" {
		t.Errorf("Failed() mismatch (-want +got):\n%s", diff)
	}
}
