package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/aura/internal/cli"
	"github.com/alexanderramin/aura/internal/config"
	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/service"
	"github.com/alexanderramin/aura/internal/weather"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.ErrorMessage(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configFlag(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var weatherObserver weather.Observer = weather.NoopObserver{}
	if cfg.Weather.LogCalls {
		weatherObserver = weather.NewLogObserver(logger)
	}
	client := weather.NewClient(cfg.Weather, weatherObserver)
	provider := weather.NewCachedProvider(client, service.NewSQLiteRepos(database).Weather, cfg.Weather.CacheTTL,
		weather.WithCacheObserver(weatherObserver))

	var opts []service.Option
	if cfg.Log.Enabled {
		opts = append(opts, service.WithObserver(service.NewSlogUseCaseObserver(logger)))
	}

	app := &cli.App{
		UseCases:       service.NewUseCases(database, provider, opts...),
		ServerAddr:     cfg.Server.Addr(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	}

	// Forms and the chat view need a real terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	return cli.NewRootCmd(app).Execute()
}

// configFlag pulls --config out of args before the command tree exists.
// The root command declares the same flag so cobra accepts it.
func configFlag(args []string) string {
	fs := pflag.NewFlagSet("aura", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
