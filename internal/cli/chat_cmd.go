package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aura/internal/cli/formatter"
	"github.com/alexanderramin/aura/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// chatHistoryWindow is how much history the interactive view replays.
const chatHistoryWindow = 10

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Talk to the wellness assistant",
		Long: `Send one message and print the reply, or run without arguments in a
terminal to open an interactive chat.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				resp, err := app.Chat.Send(cmd.Context(), contract.NewChatRequest(strings.Join(args, " ")))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChatMessage(resp.BotMessage))
				return nil
			}
			if !app.interactive() {
				return fmt.Errorf("no message given; try `aura chat hello`")
			}

			history, err := app.Chat.History(cmd.Context(), chatHistoryWindow)
			if err != nil {
				return err
			}
			view := newChatView(cmd.Context(), app.Chat, history)
			_, err = tea.NewProgram(view,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			).Run()
			return err
		},
	}
	cmd.AddCommand(newChatHistoryCmd(app), newChatClearCmd(app))
	return cmd
}

func newChatHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := app.Chat.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChatHistory(msgs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of messages")
	return cmd
}

func newChatClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the chat history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Chat.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Chat history cleared.")
			return nil
		},
	}
}
