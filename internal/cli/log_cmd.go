package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/alexanderramin/aura/internal/contract"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log activity, water, calories and mood",
	}
	cmd.AddCommand(
		newLogActivityCmd(app),
		newLogWaterCmd(app),
		newLogCaloriesCmd(app),
		newLogMoodCmd(app),
		newLogListCmd(app),
	)
	return cmd
}

func newLogActivityCmd(app *App) *cobra.Command {
	var (
		activity domain.ActivityType
		minutes  int
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log an activity and earn steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tracker.LogActivity(cmd.Context(), contract.NewLogActivityRequest(activity, minutes))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityLogged(resp))
			return nil
		},
	}

	cmd.Flags().Var(activityTypeFlag(&activity), "type", "activity type, e.g. Running")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "duration in minutes")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newLogWaterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "water",
		Short: "Log one glass of water",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tracker.DrinkWater(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWater(resp))
			return nil
		},
	}
}

func newLogCaloriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calories <kcal>",
		Short: "Add calories eaten today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("calories must be a whole number, got %q", args[0])
			}
			resp, err := app.Tracker.AddCalories(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalories(resp))
			return nil
		},
	}
}

func newLogMoodCmd(app *App) *cobra.Command {
	var mood domain.MoodLabel

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log how you feel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tracker.LogMood(cmd.Context(), contract.NewLogMoodRequest(mood))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMoodLogged(resp))
			return nil
		},
	}

	cmd.Flags().Var(moodFlag(&mood), "mood", "mood label, e.g. Happy")
	_ = cmd.MarkFlagRequired("mood")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent activities and moods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Tracker.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecentLogs(logs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", contract.RecentLogLimit, "entries per log")
	return cmd
}
