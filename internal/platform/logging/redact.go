package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds lowercase header names whose values are credentials.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// PersonalFields are attribute keys whose values identify a person. Log the
// names of failed fields, never a birth date.
var PersonalFields = []string{"birth_date", "date_of_birth", "dob"}

var (
	secretKeys = []string{"password", "secret", "token"}

	// Raw form texts are logged under this prefix only in debugging sessions.
	inputPrefix = "input_"

	bearerToken = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	calendarDay = regexp.MustCompile(`^\d{1,4}-\d{1,2}-\d{1,2}$`)
)

// redactor builds the ReplaceAttr hook shared by every handler New creates.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, keys := range [][]string{PersonalFields, secretKeys} {
		for _, key := range keys {
			opts = append(opts, masq.WithFieldName(key))
		}
	}
	opts = append(opts,
		masq.WithFieldPrefix(inputPrefix),
		masq.WithRegex(bearerToken),
		masq.WithRegex(calendarDay),
	)
	return masq.New(opts...)
}
