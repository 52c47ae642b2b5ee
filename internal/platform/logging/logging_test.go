package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		emit    func(*slog.Logger)
		want    []string
		notWant []string
		empty   bool
	}{
		{
			name:   "json",
			level:  "info",
			format: logging.FormatJSON,
			emit:   func(l *slog.Logger) { l.Info("age calculated") },
			want:   []string{`"level":"INFO"`, `"msg":"age calculated"`},
		},
		{
			name:   "text",
			level:  "info",
			format: logging.FormatText,
			emit:   func(l *slog.Logger) { l.Info("age calculated") },
			want:   []string{"level=INFO", `msg="age calculated"`},
		},
		{
			name:   "unknown format falls back to json",
			level:  "info",
			format: "xml",
			emit:   func(l *slog.Logger) { l.Info("x") },
			want:   []string{`"level":"INFO"`},
		},
		{
			name:   "debug adds source",
			level:  "DEBUG",
			format: logging.FormatJSON,
			emit:   func(l *slog.Logger) { l.Debug("ignored field input") },
			want:   []string{`"source"`, "ignored field input"},
		},
		{
			name:    "info omits source",
			level:   "info",
			format:  logging.FormatJSON,
			emit:    func(l *slog.Logger) { l.Info("x") },
			notWant: []string{`"source"`},
		},
		{
			name:   "info filters debug",
			level:  "info",
			format: logging.FormatJSON,
			emit:   func(l *slog.Logger) { l.Debug("x") },
			empty:  true,
		},
		{
			name:   "error filters warn",
			level:  "error",
			format: logging.FormatJSON,
			emit:   func(l *slog.Logger) { l.Warn("x") },
			empty:  true,
		},
		{
			name:   "unknown level is info",
			level:  "verbose",
			format: logging.FormatJSON,
			emit: func(l *slog.Logger) {
				l.Debug("hidden")
				l.Info("shown")
			},
			want:    []string{"shown"},
			notWant: []string{"hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.emit(logging.New(tt.level, tt.format, &buf))
			out := buf.String()

			if tt.empty && out != "" {
				t.Errorf("output = %q, want nothing", out)
			}
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output = %q, want it to contain %q", out, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("output = %q, want it without %q", out, s)
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := logging.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard_DropsRecords(t *testing.T) {
	t.Parallel()

	if logging.Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger reports error level enabled")
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext(empty) is not slog.Default()")
	}

	first := logging.New("info", logging.FormatJSON, new(bytes.Buffer))
	second := logging.New("debug", logging.FormatJSON, new(bytes.Buffer))

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}

	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the most recently stored logger")
	}

	fallback := logging.Discard()
	if logging.FromContextOr(context.Background(), fallback) != fallback {
		t.Error("FromContextOr(empty) did not return the fallback")
	}
	if logging.FromContextOr(ctx, fallback) != second {
		t.Error("FromContextOr ignored the stored logger")
	}
}
