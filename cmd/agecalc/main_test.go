package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var errBuf bytes.Buffer
	outBuf := &bytes.Buffer{}
	cmd := newRootCmd(os.Stdin, os.Stdout, &errBuf)
	cmd.SetOut(outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(append([]string{"--profile", ""}, args...))

	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func TestCalc_PrintsAge(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "calc", "--day", "15", "--month", "6", "--year", "2000", "--now", "2024-06-15")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "24 years\n0 months\n6 days\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestCalc_JSONOutput(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "calc", "--day", "15", "--month", "6", "--year", "2000",
		"--now", "2024-06-15T12:00:00Z", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"years": 24`) || !strings.Contains(out, `"as_of": "2024-06-15T12:00:00Z"`) {
		t.Errorf("stdout = %s", out)
	}
}

func TestCalc_RejectedGoesToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := runCLI(t, "calc", "--day", "31", "--month", "4", "--year", "2001", "--now", "2024-06-15")
	if !errors.Is(err, errRejected) {
		t.Fatalf("Execute() error = %v, want errRejected", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if !strings.Contains(errOut, "day: Must be a valid date") {
		t.Errorf("stderr = %q, want day message", errOut)
	}
}

func TestCalc_BadNow(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "calc", "--day", "1", "--month", "1", "--year", "2000", "--now", "yesterday")
	if err == nil || errors.Is(err, errRejected) {
		t.Errorf("Execute() error = %v, want a --now parse error", err)
	}
}

func TestCalc_RejectsPositionalArgs(t *testing.T) {
	t.Parallel()

	if _, _, err := runCLI(t, "calc", "15/6/2000"); err == nil {
		t.Error("Execute() error = nil, want an argument error")
	}
}
