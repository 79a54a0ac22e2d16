// Package wordlist implements maintaining and loading the wordlist files the
// passphrase generator draws from.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultDirName is the wordlist directory below the user's home that is
	// used when no custom directory is given.
	DefaultDirName = "wordlists"

	// MaxRetries is how often a wordlist download is attempted before the
	// program gives up on it.
	MaxRetries = 3

	// ExpectedMinWords is the merged-list size below which the passphrase
	// carries noticeably less entropy than advertised.
	ExpectedMinWords = 1_000_000
)

// Source describes one remote wordlist file.
type Source struct {
	Name     string
	Filename string
	URL      string
}

// Sources returns the wordlist files that make up the merged list, in the
// order they are loaded and merged.
func Sources() []Source {
	return []Source{
		{
			Name:     "english",
			Filename: "words_alpha.txt",
			URL:      "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt",
		},
		{
			Name:     "italian",
			Filename: "660000_parole_italiane.txt",
			URL:      "https://raw.githubusercontent.com/napolux/paroleitaliane/refs/heads/main/paroleitaliane/660000_parole_italiane.txt",
		},
	}
}

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Create(name string) (*os.File, error)
	Open(name string) (*os.File, error)
}

type httpProvider interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	osHandler   osProvider
	httpHandler httpProvider
	sleepFn     func(time.Duration)
}

// NewHandler returns a pointer to a new wordlist [Handler].
func NewHandler(osHandler osProvider, httpHandler httpProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		httpHandler: httpHandler,
		sleepFn:     time.Sleep,
	}
}

// EnsureAll creates dir when missing and downloads every wordlist file that
// is not yet present in it. Files already on disk are never re-fetched.
func (w *Handler) EnsureAll(ctx context.Context, dir string) error {
	if err := w.osHandler.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("(wordlist) failed to create %s: %w", dir, err)
	}

	for _, source := range Sources() {
		path := filepath.Join(dir, source.Filename)

		if _, err := w.osHandler.Stat(path); err == nil {
			continue
		}

		slog.Info("Downloading wordlist.", "name", source.Filename, "url", source.URL)

		if err := w.download(ctx, source.URL, path); err != nil {
			return err
		}
	}

	return nil
}

// download fetches url into path, retrying failed attempts with an
// exponentially growing wait in between.
func (w *Handler) download(ctx context.Context, url string, path string) error {
	var lastErr error

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			w.sleepFn(time.Duration(1<<(attempt-1)) * time.Second)
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("(wordlist) aborted fetching %s: %w", url, err)
		}

		if err := w.fetchOnce(ctx, url, path); err != nil {
			lastErr = err
			slog.Warn("Failed to download wordlist.",
				"err", err,
				"attempt", attempt+1,
				"of", MaxRetries,
			)

			continue
		}

		slog.Info("Downloaded wordlist.", "path", path)

		return nil
	}

	return fmt.Errorf("(wordlist) giving up on %s after %d attempts: %w: %w", url, MaxRetries, ErrDownloadFailed, lastErr)
}

func (w *Handler) fetchOnce(ctx context.Context, url string, path string) error {
	resp, err := w.httpHandler.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %w: %s", url, ErrUnexpectedStatus, resp.Status)
	}

	f, err := w.osHandler.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()

		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// LoadMerged reads every wordlist file below dir into one deduplicated list.
// Lines are trimmed and lowercased, blank lines are skipped, and a word shared
// between the languages collapses onto its first occurrence.
func (w *Handler) LoadMerged(dir string) ([]string, error) {
	seen := make(map[string]struct{})

	var words []string

	for _, source := range Sources() {
		path := filepath.Join(dir, source.Filename)

		count, err := w.loadInto(path, seen, &words)
		if err != nil {
			return nil, err
		}

		slog.Info("Loaded wordlist.", "name", source.Name, "words", count)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("(wordlist) nothing loaded from %s: %w", dir, ErrEmptyWordlist)
	}

	return words, nil
}

func (w *Handler) loadInto(path string, seen map[string]struct{}, words *[]string) (int, error) {
	f, err := w.osHandler.Open(path)
	if err != nil {
		return 0, fmt.Errorf("(wordlist) failed to open %s: %w", path, err)
	}
	defer f.Close()

	count := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}

		count++

		if _, exists := seen[word]; exists {
			continue
		}

		seen[word] = struct{}{}
		*words = append(*words, word)
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("(wordlist) failed to read %s: %w", path, err)
	}

	return count, nil
}
