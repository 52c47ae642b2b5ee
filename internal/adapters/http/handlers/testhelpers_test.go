package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/app/form"
	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// submit produces the Submission a real form would for in at testNow.
func submit(in ports.AgeInput) age.Submission {
	c := form.New(clock.Fixed{At: testNow})
	for id, text := range map[age.FieldID]string{
		age.FieldDay:   in.Day,
		age.FieldMonth: in.Month,
		age.FieldYear:  in.Year,
	} {
		c.Edit(id, text)
	}
	return c.Submit()
}

func encodeBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return &buf
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
