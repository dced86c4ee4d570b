package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/alexanderramin/aura/internal/contract"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Body metrics and cycle tracking",
	}
	cmd.AddCommand(newHealthBMICmd(app), newHealthCycleCmd(app))
	return cmd
}

func newHealthBMICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bmi",
		Short: "BMI, risk level and daily calorie needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Health.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHealthReport(report))
			return nil
		},
	}
}

func newHealthCycleCmd(app *App) *cobra.Command {
	var (
		start  string
		length int
	)

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Menstrual cycle phase and predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.ParseInLocation(time.DateOnly, start, time.Local)
			if err != nil {
				return contract.NewError(contract.ErrInvalidCycle, "start must be YYYY-MM-DD, got %q", start)
			}
			report, err := app.Health.Cycle(cmd.Context(), contract.NewCycleRequest(day, length))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCycleReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the last period (YYYY-MM-DD)")
	cmd.Flags().IntVar(&length, "length", 0, "cycle length in days (default 28)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
