package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/domain/age"
)

// Placeholder stands in for each result number until a submit succeeds.
const Placeholder = "- -"

// Output formats accepted by WriteSubmission.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// RenderForm writes the fields and the result panel. When hasError is set
// every caption is flagged and each field's message is printed under it.
func RenderForm(w io.Writer, fields []age.FieldSpec, hasError bool, result age.Elapsed, hasResult bool) error {
	var b strings.Builder

	for _, f := range fields {
		caption := strings.ToUpper(f.Caption)
		if hasError {
			caption += " !"
		}
		text := f.Value.String()
		if text == "" {
			text = f.Placeholder
		}
		fmt.Fprintf(&b, "  %-8s %s\n", caption, text)
		if hasError && f.Error != "" {
			fmt.Fprintf(&b, "           %s\n", f.Error)
		}
	}

	b.WriteString("\n")
	for _, line := range resultLines(result, hasResult) {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func resultLines(result age.Elapsed, hasResult bool) []string {
	number := func(n int) string {
		if !hasResult {
			return Placeholder
		}
		return strconv.Itoa(n)
	}
	return []string{
		number(result.Years) + " years",
		number(result.Months) + " months",
		number(result.Days) + " days",
	}
}

type jsonResult struct {
	Years  int    `json:"years"`
	Months int    `json:"months"`
	Days   int    `json:"days"`
	AsOf   string `json:"as_of"`
}

type jsonFailure struct {
	Errors map[string]string `json:"errors"`
	AsOf   string            `json:"as_of"`
}

// WriteSubmission prints a one-shot submission in the given format.
func WriteSubmission(w io.Writer, sub age.Submission, format string) error {
	switch format {
	case FormatJSON:
		return writeSubmissionJSON(w, sub)
	case FormatText, "":
		return writeSubmissionText(w, sub)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeSubmissionText(w io.Writer, sub age.Submission) error {
	if sub.HasErrors() {
		var b strings.Builder
		for _, id := range sub.Outcome().Failed() {
			fmt.Fprintf(&b, "%s: %s\n", id, sub.Outcome().Message(id))
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	result, hasResult := sub.Result()
	_, err := io.WriteString(w, strings.Join(resultLines(result, hasResult), "\n")+"\n")
	return err
}

func writeSubmissionJSON(w io.Writer, sub age.Submission) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	asOf := sub.At().Format(time.RFC3339)

	if sub.HasErrors() {
		errs := make(map[string]string)
		for _, id := range sub.Outcome().Failed() {
			errs[id.String()] = sub.Outcome().Message(id)
		}
		return enc.Encode(jsonFailure{Errors: errs, AsOf: asOf})
	}

	result, _ := sub.Result()
	return enc.Encode(jsonResult{
		Years:  result.Years,
		Months: result.Months,
		Days:   result.Days,
		AsOf:   asOf,
	})
}
