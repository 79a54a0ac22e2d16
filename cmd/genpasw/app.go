package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/riccardosarro/sandboxfix/internal/passphrase"
	"github.com/riccardosarro/sandboxfix/internal/wordlist"
)

type App struct {
	wordlistDir     string
	wordlistHandler *wordlist.Handler
	passHandler     *passphrase.Handler
}

func NewApp(wordlistDir string,
	wordlistHandler *wordlist.Handler,
	passHandler *passphrase.Handler,
) *App {
	return &App{
		wordlistDir:     wordlistDir,
		wordlistHandler: wordlistHandler,
		passHandler:     passHandler,
	}
}

// Launch runs the generation pipeline: make sure all wordlist files are on
// disk, merge them into one deduplicated pool, draw the passphrase and report
// it together with its estimated strength. The passphrase itself goes to
// stdout; everything else is logging.
func (app *App) Launch(ctx context.Context) error {
	slog.Info("Using wordlist directory.", "dir", app.wordlistDir)

	if err := app.wordlistHandler.EnsureAll(ctx, app.wordlistDir); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	words, err := app.wordlistHandler.LoadMerged(app.wordlistDir)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	slog.Info("Merged the wordlists.", "uniqueWords", humanize.Comma(int64(len(words))))

	if len(words) < wordlist.ExpectedMinWords {
		slog.Warn("The merged wordlist is smaller than expected, the passphrase will carry less entropy.",
			"uniqueWords", humanize.Comma(int64(len(words))),
			"expected", humanize.Comma(wordlist.ExpectedMinWords),
		)
	}

	result, err := app.passHandler.Generate(words, passphrase.NumWords)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	fmt.Printf("\n%s\n\n", result)

	slog.Info("Generated a passphrase.",
		"words", passphrase.NumWords,
		"entropy", fmt.Sprintf("%.0f bits", passphrase.EntropyBits(len(words), passphrase.NumWords)),
	)

	return nil
}
