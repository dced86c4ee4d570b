package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Health knowledge quiz",
		Long: `Answer true/false health questions. Run without a subcommand in a
terminal to play interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return printQuizStatus(cmd, app)
			}
			return runQuizInteractive(cmd, app)
		},
	}
	cmd.AddCommand(newQuizStartCmd(app), newQuizAnswerCmd(app), newQuizStatusCmd(app))
	return cmd
}

func newQuizStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz from the first question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Quiz.Start(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuizStatus(status))
			return nil
		},
	}
}

func newQuizAnswerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "answer <true|false>",
		Short:     "Answer the current question",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("answer must be true or false, got %q", args[0])
			}
			resp, err := app.Quiz.Answer(cmd.Context(), answer)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuizAnswer(resp))
			return nil
		},
	}
}

func newQuizStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current question and score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printQuizStatus(cmd, app)
		},
	}
}

func printQuizStatus(cmd *cobra.Command, app *App) error {
	status, err := app.Quiz.Status(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuizStatus(status))
	return nil
}

// runQuizInteractive asks the remaining questions with a true/false
// confirm. A finished quiz starts over.
func runQuizInteractive(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	status, err := app.Quiz.Status(ctx)
	if err != nil {
		return err
	}
	if status.Done {
		if status, err = app.Quiz.Start(ctx); err != nil {
			return err
		}
	}

	for !status.Done {
		var answer bool
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Q%d/%d  %s", status.Index+1, status.Total, status.Question)).
			Affirmative("True").
			Negative("False").
			Value(&answer)
		if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(auraHuhTheme()).Run(); err != nil {
			return err
		}

		resp, err := app.Quiz.Answer(ctx, answer)
		if err != nil {
			return err
		}
		if resp.Correct {
			fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Correct!"))
		} else {
			fmt.Fprintf(out, "%s The answer is %t.\n", formatter.StyleRed.Render("✖ Not quite."), resp.Expected)
		}
		fmt.Fprint(out, formatter.FormatNewBadges(resp.NewBadges))
		status = &resp.Status
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatQuizStatus(status))
	return nil
}
