package cli

import (
	"fmt"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start over, keeping only your profile",
		Long: `Zero steps, water, calories and quiz progress, and delete the activity
log, mood log, badges and chat history. Your profile and cached weather
are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without --yes")
				}
				confirm := huh.NewConfirm().
					Title("Reset all tracking data?").
					Affirmative("Reset").
					Negative("Cancel").
					Value(&yes)
				if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(auraHuhTheme()).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Tracker.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Tracking data reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
