package form_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/agecalc/internal/app/form"
	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
)

var frozenNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func newController(t *testing.T) *form.Controller {
	t.Helper()
	return form.New(clock.Fixed{At: frozenNow})
}

func fill(t *testing.T, c *form.Controller, day, month, year string) {
	t.Helper()
	for id, text := range map[age.FieldID]string{
		age.FieldDay:   day,
		age.FieldMonth: month,
		age.FieldYear:  year,
	} {
		if !c.Edit(id, text) {
			t.Fatalf("Edit(%s, %q) rejected", id, text)
		}
	}
}

func fieldValue(t *testing.T, c *form.Controller, id age.FieldID) age.Value {
	t.Helper()
	f, ok := c.Field(id)
	if !ok {
		t.Fatalf("Field(%s) missing", id)
	}
	return f.Value
}

func TestNew_StartsEditingWithEmptyFields(t *testing.T) {
	t.Parallel()

	c := newController(t)

	if c.State() != form.StateEditing {
		t.Errorf("State() = %s, want editing", c.State())
	}
	if c.HasError() {
		t.Error("HasError() = true on a fresh form")
	}
	if _, ok := c.Result(); ok {
		t.Error("Result() present on a fresh form")
	}
	if _, ok := c.Last(); ok {
		t.Error("Last() present on a fresh form")
	}
	for _, f := range c.Fields() {
		if f.Value.IsSet() {
			t.Errorf("field %s = %v, want unset", f.ID, f.Value)
		}
	}
}

func TestEdit_Normalization(t *testing.T) {
	t.Parallel()

	c := newController(t)

	if !c.Edit(age.FieldDay, "07") {
		t.Fatal("Edit(day, \"07\") rejected")
	}
	if got := fieldValue(t, c, age.FieldDay); got != age.Int(7) {
		t.Errorf("day = %v, want 7", got)
	}

	rejected := []string{"123", "1a", "-1", " 1", "١٢"}
	for _, text := range rejected {
		if c.Edit(age.FieldDay, text) {
			t.Errorf("Edit(day, %q) accepted, want rejected", text)
		}
		if got := fieldValue(t, c, age.FieldDay); got != age.Int(7) {
			t.Errorf("after Edit(day, %q) day = %v, want unchanged 7", text, got)
		}
	}

	if !c.Edit(age.FieldDay, "") {
		t.Fatal("Edit(day, \"\") rejected")
	}
	if got := fieldValue(t, c, age.FieldDay); got.IsSet() {
		t.Errorf("day = %v after clearing, want unset", got)
	}

	if !c.Edit(age.FieldYear, "2000") {
		t.Error("Edit(year, \"2000\") rejected, year allows four digits")
	}
	if c.Edit(age.FieldYear, "20001") {
		t.Error("Edit(year, \"20001\") accepted, want rejected")
	}
}

func TestEdit_UnknownField(t *testing.T) {
	t.Parallel()

	c := newController(t)
	if c.Edit(age.FieldID(42), "1") {
		t.Error("Edit on unknown field accepted")
	}
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	c := newController(t)
	fill(t, c, "15", "6", "2000")

	sub := c.Submit()

	if sub.HasErrors() {
		t.Fatalf("submission has errors: %v", sub.Err())
	}
	want := age.Elapsed{Years: 24, Months: 0, Days: 6}
	got, ok := c.Result()
	if !ok {
		t.Fatal("Result() absent after successful submit")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
	if c.State() != form.StateSuccess {
		t.Errorf("State() = %s, want success", c.State())
	}
	if c.HasError() {
		t.Error("HasError() = true after success")
	}
	if !sub.At().Equal(frozenNow) {
		t.Errorf("submission At() = %v, want %v", sub.At(), frozenNow)
	}
}

func TestSubmit_ErrorSurfacesMessagesAndWithholdsResult(t *testing.T) {
	t.Parallel()

	c := newController(t)
	fill(t, c, "31", "4", "")

	sub := c.Submit()

	// 31 April passes the day rules while the year is unset; only the
	// missing year is reported.
	want := age.Outcome{age.FieldYear: age.MsgRequired}
	if diff := cmp.Diff(want, sub.Outcome()); diff != "" {
		t.Errorf("Outcome() mismatch (-want +got):\n%s", diff)
	}
	if c.State() != form.StateError {
		t.Errorf("State() = %s, want error", c.State())
	}
	if !c.HasError() {
		t.Error("HasError() = false, want true")
	}
	if _, ok := c.Result(); ok {
		t.Error("Result() present after failed submit")
	}
	year, _ := c.Field(age.FieldYear)
	if year.Error != age.MsgRequired {
		t.Errorf("year Error = %q, want %q", year.Error, age.MsgRequired)
	}
}

func TestSubmit_ClearsStaleMessages(t *testing.T) {
	t.Parallel()

	c := newController(t)
	c.Submit()

	for _, f := range c.Fields() {
		if f.Error != age.MsgRequired {
			t.Fatalf("field %s Error = %q, want %q", f.ID, f.Error, age.MsgRequired)
		}
	}

	fill(t, c, "1", "1", "1990")
	c.Submit()

	for _, f := range c.Fields() {
		if f.Error != "" {
			t.Errorf("field %s Error = %q after valid submit, want empty", f.ID, f.Error)
		}
	}
	if c.HasError() {
		t.Error("HasError() still set after valid submit")
	}
}

func TestSubmit_FailureClearsEarlierResult(t *testing.T) {
	t.Parallel()

	c := newController(t)
	fill(t, c, "1", "1", "1990")
	c.Submit()

	if !c.Edit(age.FieldYear, "2030") {
		t.Fatal("Edit(year) rejected")
	}
	c.Submit()

	if _, ok := c.Result(); ok {
		t.Error("Result() still present after failed submit")
	}
	year, _ := c.Field(age.FieldYear)
	if year.Error != age.MsgNotInPast {
		t.Errorf("year Error = %q, want %q", year.Error, age.MsgNotInPast)
	}
}

func TestEdit_AfterSuccessKeepsResultUntilNextSubmit(t *testing.T) {
	t.Parallel()

	c := newController(t)
	fill(t, c, "14", "6", "2024")
	c.Submit()

	before, ok := c.Result()
	if !ok {
		t.Fatal("Result() absent after successful submit")
	}

	if !c.Edit(age.FieldDay, "") {
		t.Fatal("clearing day rejected")
	}

	if c.State() != form.StateEditing {
		t.Errorf("State() = %s after edit, want editing", c.State())
	}
	after, ok := c.Result()
	if !ok {
		t.Fatal("Result() cleared by an edit")
	}
	if after != before {
		t.Errorf("Result() changed by an edit: %+v -> %+v", before, after)
	}

	c.Submit()
	if _, ok := c.Result(); ok {
		t.Error("Result() present after submitting with an empty day")
	}
}

func TestEdit_KeepsMessagesUntilNextSubmit(t *testing.T) {
	t.Parallel()

	c := newController(t)
	c.Submit()

	if !c.Edit(age.FieldDay, "5") {
		t.Fatal("Edit(day) rejected")
	}

	day, _ := c.Field(age.FieldDay)
	if day.Error != age.MsgRequired {
		t.Errorf("day Error = %q after edit, want previous %q", day.Error, age.MsgRequired)
	}
	if !c.HasError() {
		t.Error("HasError() cleared by an edit")
	}
}

func TestSubmit_SnapshotsAreIndependent(t *testing.T) {
	t.Parallel()

	c := newController(t)
	fill(t, c, "1", "1", "1990")
	first := c.Submit()

	fill(t, c, "2", "2", "1991")
	second := c.Submit()

	d1, _ := first.Field(age.FieldDay)
	d2, _ := second.Field(age.FieldDay)
	if d1.Value != age.Int(1) || d2.Value != age.Int(2) {
		t.Errorf("snapshot days = %v, %v; want 1, 2", d1.Value, d2.Value)
	}

	last, ok := c.Last()
	if !ok {
		t.Fatal("Last() absent")
	}
	if ld, _ := last.Field(age.FieldDay); ld.Value != age.Int(2) {
		t.Errorf("Last() day = %v, want 2", ld.Value)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		max    int
		want   age.Value
		wantOK bool
	}{
		{"", 2, age.Value{}, true},
		{"0", 2, age.Int(0), true},
		{"09", 2, age.Int(9), true},
		{"99", 2, age.Int(99), true},
		{"100", 2, age.Value{}, false},
		{"9999", 4, age.Int(9999), true},
		{"1.5", 4, age.Value{}, false},
		{"+1", 4, age.Value{}, false},
		{"1e3", 4, age.Value{}, false},
	}

	for _, tt := range tests {
		got, ok := form.Normalize(tt.text, tt.max)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Normalize(%q, %d) = %v, %v; want %v, %v", tt.text, tt.max, got, ok, tt.want, tt.wantOK)
		}
	}
}
