package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/agecalc/internal/adapters/cli"
	"github.com/jsamuelsen11/agecalc/internal/app"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

func newCalcCmd(root *rootOptions, stderr io.Writer) *cobra.Command {
	var (
		in     ports.AgeInput
		output string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate one age from flags",
		Example: `  agecalc calc --day 15 --month 6 --year 2000
  agecalc calc --day 15 --month 6 --year 2000 --now 2024-06-15 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := root.resolve(stderr)
			if err != nil {
				return err
			}

			svc := app.NewAgeService(e.clock, e.logger, nil, app.BatchLimits{})
			sub, err := svc.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if sub.HasErrors() {
				out = cmd.ErrOrStderr()
			}
			if err := cli.WriteSubmission(out, sub, output); err != nil {
				return err
			}
			if sub.HasErrors() {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Day, "day", "", "day of birth (DD)")
	cmd.Flags().StringVar(&in.Month, "month", "", "month of birth (MM)")
	cmd.Flags().StringVar(&in.Year, "year", "", "year of birth (YYYY)")
	cmd.Flags().StringVarP(&output, "output", "o", cli.FormatText, "output format: text or json")

	return cmd
}
