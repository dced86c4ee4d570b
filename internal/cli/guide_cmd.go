package cli

import (
	"fmt"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGuideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Aliases: []string{"recommend"},
		Short:   "Personalized recommendations for right now",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Guidance.Recommendations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(resp))
			return nil
		},
	}
}

func newScoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show today's wellness score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Guidance.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScore(dash))
			return nil
		},
	}
}

func newBadgesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show earned and remaining badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Guidance.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBadges(dash.Badges))
			return nil
		},
	}
}

func newTipsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "A few random wellness tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tips, err := app.Guidance.Tips(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTips(tips))
			return nil
		},
	}
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Overview of profile, progress, badges and weather",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Guidance.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(dash))
			return nil
		},
	}
}
