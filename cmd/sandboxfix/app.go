package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/riccardosarro/sandboxfix/internal/configuration"
	"github.com/riccardosarro/sandboxfix/internal/corrector"
	"github.com/riccardosarro/sandboxfix/internal/inspector"
	"github.com/riccardosarro/sandboxfix/internal/locator"
	"github.com/riccardosarro/sandboxfix/internal/privilege"
	"github.com/riccardosarro/sandboxfix/internal/verifier"
)

type App struct {
	settings       *configuration.Settings
	privHandler    *privilege.Handler
	locHandler     *locator.Handler
	inspectHandler *inspector.Handler
	correctHandler *corrector.Handler
	verifyHandler  *verifier.Handler
}

func NewApp(settings *configuration.Settings,
	privHandler *privilege.Handler,
	locHandler *locator.Handler,
	inspectHandler *inspector.Handler,
	correctHandler *corrector.Handler,
	verifyHandler *verifier.Handler,
) *App {
	return &App{
		settings:       settings,
		privHandler:    privHandler,
		locHandler:     locHandler,
		inspectHandler: inspectHandler,
		correctHandler: correctHandler,
		verifyHandler:  verifyHandler,
	}
}

// Launch runs the repair pipeline: privilege check, location, inspection,
// correction and final verification. Any failure before verification is
// fatal; a verification mismatch is only warned about and does not change
// the exit status.
func (app *App) Launch(ctx context.Context) error {
	target := app.settings.Target

	if err := app.privHandler.EnsureElevated(); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	path, err := app.locHandler.Locate(ctx, target.BrowserRoot, target.HelperName)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	snap, err := app.inspectHandler.Inspect(path)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Info("Located the sandbox helper.",
		"path", snap.Path,
		"owner", snap.Owner,
		"mode", snap.Mode,
		"size", humanize.Bytes(uint64(snap.Size)),
	)

	applied, err := app.correctHandler.Apply(snap, target)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	switch {
	case applied.Ownership && applied.Permissions:
		slog.Info("Corrected ownership and permissions.",
			"owner", target.Owner,
			"mode", target.Mode,
		)
	case applied.Ownership:
		slog.Info("Corrected ownership.", "owner", target.Owner)
	case applied.Permissions:
		slog.Info("Corrected permissions.", "mode", target.Mode)
	default:
		slog.Info("No corrections were needed.")
	}

	result, err := app.verifyHandler.Verify(path, target)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if result.Match {
		slog.Info("The sandbox helper is in its required state.",
			"owner", result.ActualOwner,
			"mode", result.ActualMode,
		)
	} else {
		slog.Warn("The sandbox helper still differs from its required state.",
			"wantOwner", result.ExpectedOwner,
			"haveOwner", result.ActualOwner,
			"wantMode", result.ExpectedMode,
			"haveMode", result.ActualMode,
		)
	}

	return nil
}
