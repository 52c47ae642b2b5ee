package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/agecalc/internal/app/form"
	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

const (
	actionCalculate = "Calculate"
	actionQuit      = "Quit"
)

// Session is one interactive terminal form. It owns a single form.Controller
// for its whole lifetime, so results and messages persist between prompts the
// same way they do on the page.
type Session struct {
	driver PromptDriver
	ctrl   *form.Controller
	out    io.Writer
	logger *slog.Logger
}

// NewSession creates a Session drawing on out. A nil logger is replaced with
// a discarding one.
func NewSession(driver PromptDriver, clk ports.Clock, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		driver: driver,
		ctrl:   form.New(clk),
		out:    out,
		logger: logger,
	}
}

// Controller exposes the session's form for inspection.
func (s *Session) Controller() *form.Controller {
	return s.ctrl
}

// Run loops until the user quits or interrupts a prompt. Quitting is not an
// error; any other driver failure is returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.render(); err != nil {
			return err
		}

		options := s.menu()
		choice, err := s.driver.Select(ctx, SelectConfig{
			Message:      "What next?",
			Options:      options,
			DefaultIndex: s.suggest(),
		})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("choosing action: %w", err)
		}
		if choice < 0 || choice >= len(options) {
			return fmt.Errorf("choosing action: option %d out of range", choice)
		}

		switch ids := age.FieldIDs(); {
		case choice < len(ids):
			if err := s.edit(ctx, ids[choice]); err != nil {
				if errors.Is(err, ErrAborted) {
					return nil
				}
				return err
			}
		case options[choice] == actionCalculate:
			s.submit(ctx)
		default:
			return nil
		}
	}
}

func (s *Session) menu() []string {
	fields := s.ctrl.Fields()
	options := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		options = append(options, fmt.Sprintf("Enter %s (%s)", f.Caption, f.Placeholder))
	}
	return append(options, actionCalculate, actionQuit)
}

// suggest points the menu at the first empty field, or at Calculate once
// every field holds a value.
func (s *Session) suggest() int {
	fields := s.ctrl.Fields()
	for i, f := range fields {
		if !f.Value.IsSet() {
			return i
		}
	}
	return len(fields)
}

func (s *Session) edit(ctx context.Context, id age.FieldID) error {
	f, _ := s.ctrl.Field(id)
	text, err := s.driver.Input(ctx, InputConfig{
		Message: strings.ToUpper(f.Caption),
		Default: f.Value.String(),
		Help:    fmt.Sprintf("Digits only, at most %d. Leave blank to clear.", f.MaxLength),
	})
	if err != nil {
		return err
	}

	if !s.ctrl.Edit(id, text) {
		s.logger.DebugContext(ctx, "ignored field input",
			slog.String("field", id.String()),
			slog.Int("length", len(text)),
		)
		_, err := fmt.Fprintf(s.out, "  %s ignored: digits only, at most %d\n", f.Caption, f.MaxLength)
		return err
	}
	return nil
}

func (s *Session) submit(ctx context.Context) {
	sub := s.ctrl.Submit()
	if sub.HasErrors() {
		failed := make([]string, 0)
		for _, id := range sub.Outcome().Failed() {
			failed = append(failed, id.String())
		}
		s.logger.DebugContext(ctx, "age submission rejected", slog.Any("failed_fields", failed))
		return
	}
	s.logger.DebugContext(ctx, "age calculated")
}

func (s *Session) render() error {
	result, hasResult := s.ctrl.Result()
	if _, err := io.WriteString(s.out, "\n"); err != nil {
		return err
	}
	return RenderForm(s.out, s.ctrl.Fields(), s.ctrl.HasError(), result, hasResult)
}
