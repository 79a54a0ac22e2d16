package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/riccardosarro/sandboxfix/internal/configuration"
	"github.com/riccardosarro/sandboxfix/internal/corrector"
	"github.com/riccardosarro/sandboxfix/internal/inspector"
	"github.com/riccardosarro/sandboxfix/internal/locator"
	"github.com/riccardosarro/sandboxfix/internal/privilege"
	"github.com/riccardosarro/sandboxfix/internal/schema"
	"github.com/riccardosarro/sandboxfix/internal/verifier"
)

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

	configProvider := &configuration.GodotenvProvider{}
	configHandler := configuration.NewHandler(configProvider)
	settings := configHandler.Load(configuration.OverrideFile)

	setupLogging(settings.LogLevel)
	setupSignalHandlers(cancel)

	slog.Info("Repairing the sandbox helper.", "version", version())

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	userProvider := &schema.Users{}
	walkProvider := &schema.FileWalker{}

	privHandler := privilege.NewHandler(osProvider)
	locHandler := locator.NewHandler(walkProvider)
	inspectHandler := inspector.NewHandler(unixProvider, userProvider)
	correctHandler := corrector.NewHandler(unixProvider, userProvider)
	verifyHandler := verifier.NewHandler(inspectHandler)

	app := NewApp(settings, privHandler, locHandler, inspectHandler, correctHandler, verifyHandler)

	if err := app.Launch(ctx); err != nil {
		slog.Error("Failed to repair the sandbox helper.",
			"err", err,
		)

		ExitCode = 1
	}
}
