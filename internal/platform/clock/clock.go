// Package clock provides the Clock implementations injected into the
// application layer: the wall clock for normal operation and a frozen clock
// for demos, end-to-end checks and tests.
package clock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Clock = System{}
	_ ports.Clock = Fixed{}
)

// System reads the wall clock in the local time zone.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.At
}

// New returns a Fixed clock when frozen is non-empty and the System clock
// otherwise. frozen is parsed with Parse.
func New(frozen string) (ports.Clock, error) {
	if strings.TrimSpace(frozen) == "" {
		return System{}, nil
	}
	at, err := Parse(frozen)
	if err != nil {
		return nil, err
	}
	return Fixed{At: at}, nil
}

// Parse accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date. Bare dates
// resolve to noon UTC so the calendar day is the same in every zone the
// service is likely to run in.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing instant %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return d.Add(12 * time.Hour), nil
}

// saneFloor is the earliest instant a healthy clock can report. A host clock
// reset to the epoch would reject most real birth dates as "in the future".
var saneFloor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Checker exposes a Clock to the readiness probe.
type Checker struct {
	Clock ports.Clock
}

var _ ports.HealthChecker = Checker{}

// Name implements ports.HealthChecker.
func (Checker) Name() string { return "clock" }

// HealthCheck fails when the clock reads earlier than 2000-01-01.
func (c Checker) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if now := c.Clock.Now(); now.Before(saneFloor) {
		return fmt.Errorf("clock reads %s, earlier than %s", now.Format(time.RFC3339), saneFloor.Format(time.DateOnly))
	}
	return nil
}
