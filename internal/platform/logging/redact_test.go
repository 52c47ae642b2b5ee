package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"api token", slog.String("token", "tok_live_abc123"), "tok_live_abc123"},
		{"bearer anywhere", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"raw input text", slog.String("input_year", "1987"), "1987"},
		{"bare date", slog.String("value", "1987-3-9"), "1987-3-9"},
	}
	for _, key := range logging.PersonalFields {
		tests = append(tests, struct {
			name   string
			attr   slog.Attr
			secret string
		}{"personal " + key, slog.String(key, "2000-06-15"), "2000-06-15"})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", logging.FormatJSON, &buf).Info("submit", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOperationalFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", logging.FormatJSON, &buf).Info("age submission rejected",
		slog.String("path", "/api/v1/age"),
		slog.Any("failed_fields", []string{"day", "year"}),
		slog.Int("status", 400),
	)

	out := buf.String()
	for _, want := range []string{"/api/v1/age", `"day"`, `"year"`, `"status":400`} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to keep %s", out, want)
		}
	}
}
