package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/riccardosarro/sandboxfix/internal/passphrase"
	"github.com/riccardosarro/sandboxfix/internal/schema"
	"github.com/riccardosarro/sandboxfix/internal/wordlist"
)

const downloadTimeout = 10 * time.Second

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func version() string {
	if Version == "" {
		return "dev"
	}

	return Version
}

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging(slog.LevelInfo)
	setupSignalHandlers(cancel)

	slog.Info("Generating a passphrase.", "version", version())

	osProvider := &schema.OS{}
	httpProvider := &schema.HTTP{Client: &http.Client{Timeout: downloadTimeout}}
	randProvider := &schema.Rand{}

	dir := flag.Arg(0)
	if dir == "" {
		home, err := osProvider.UserHomeDir()
		if err != nil {
			slog.Error("Failed to determine the home directory.",
				"err", err,
			)

			ExitCode = 1

			return
		}

		dir = filepath.Join(home, wordlist.DefaultDirName)
	}

	wordlistHandler := wordlist.NewHandler(osProvider, httpProvider)
	passHandler := passphrase.NewHandler(randProvider)

	app := NewApp(dir, wordlistHandler, passHandler)

	if err := app.Launch(ctx); err != nil {
		slog.Error("Failed to generate a passphrase.",
			"err", err,
		)

		ExitCode = 1
	}
}
