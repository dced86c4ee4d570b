package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/aura/internal/contract"
	"github.com/spf13/cobra"
)

// App holds the use cases and host settings shared by every command.
type App struct {
	contract.UseCases

	// Now is the wall clock used for relative timestamps. Defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether forms and the chat view may take over
	// the terminal. Nil means never.
	IsInteractive func() bool

	// Serve settings.
	ServerAddr     string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRootCmd creates the top-level "aura" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "aura",
		Short:         "Personal wellness tracker and coach",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Read by cmd/aura before the tree is built.
	root.PersistentFlags().String("config", "", "config file (default ~/.aura/config.yaml or $AURA_CONFIG)")

	root.AddCommand(
		newProfileCmd(app),
		newLogCmd(app),
		newGuideCmd(app),
		newScoreCmd(app),
		newBadgesCmd(app),
		newTipsCmd(app),
		newDashboardCmd(app),
		newWeatherCmd(app),
		newHealthCmd(app),
		newQuizCmd(app),
		newChatCmd(app),
		newResetCmd(app),
		newServeCmd(app),
	)

	return root
}
