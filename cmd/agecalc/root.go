package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/agecalc/internal/adapters/cli"
	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
	"github.com/jsamuelsen11/agecalc/internal/platform/config"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

// errRejected reports a submission that failed validation. Its messages have
// already been printed, so main only sets the exit code.
var errRejected = errors.New("submission rejected")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	profile  string
	now      string
	logLevel string
}

// env is what the commands need once flags are parsed.
type env struct {
	clock  ports.Clock
	logger *slog.Logger
}

// resolve builds the clock and logger. A profile loads the service's config
// files first; --now and --log-level override whatever they set.
func (o *rootOptions) resolve(stderr io.Writer) (*env, error) {
	level, format, frozen := "warn", "text", ""

	if o.profile != "" {
		cfg, err := config.Load(o.profile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		level, frozen = cfg.Log.Level, cfg.Clock.FixedNow
	}
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.now != "" {
		frozen = o.now
	}

	clk, err := clock.New(frozen)
	if err != nil {
		return nil, fmt.Errorf("--now: %w", err)
	}
	return &env{
		clock:  clk,
		logger: logging.New(level, format, stderr),
	}, nil
}

func newRootCmd(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "agecalc",
		Short: "Calculate an age from a day, month and year of birth",
		Long: `agecalc asks for a day, month and year of birth and reports the time
elapsed since then in years, months and days. Years count as 365 days and
months as 30, so results are an approximation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.resolve(stderr)
			if err != nil {
				return err
			}
			driver := cli.NewSurveyDriver(stdin, stdout, stderr)
			return cli.NewSession(driver, e.clock, cmd.OutOrStdout(), e.logger).Run(cmd.Context())
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"),
		"config profile to load (defaults to $APP_PROFILE)")
	root.PersistentFlags().StringVar(&opts.now, "now", "",
		"freeze the current instant (RFC 3339 or YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error")

	root.AddCommand(newCalcCmd(opts, stderr))
	return root
}
