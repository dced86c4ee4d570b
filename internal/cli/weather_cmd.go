package cli

import (
	"fmt"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeatherCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch or show local weather",
	}
	cmd.AddCommand(newWeatherFetchCmd(app), newWeatherShowCmd(app))
	return cmd
}

func newWeatherFetchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <pincode>",
		Short: "Fetch current weather for a 6-digit pincode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching weather...")
			}
			snap, err := app.Weather.Fetch(cmd.Context(), args[0])
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeather(snap, app.now()))
			return nil
		},
	}
}

func newWeatherShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the last fetched weather if still fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Weather.Current(cmd.Context())
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No recent weather. Run `aura weather fetch <pincode>`."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeather(snap, app.now()))
			return nil
		},
	}
}
