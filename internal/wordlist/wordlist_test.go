package wordlist

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riccardosarro/sandboxfix/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponse struct {
	status int
	body   string
	err    error
}

// fakeFetcher replays a scripted sequence of HTTP responses.
type fakeFetcher struct {
	t         *testing.T
	responses []fakeResponse
	calls     int
	urls      []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (*http.Response, error) {
	require.Less(f.t, f.calls, len(f.responses), "unexpected extra fetch of %s", url)

	resp := f.responses[f.calls]
	f.calls++
	f.urls = append(f.urls, url)

	if resp.err != nil {
		return nil, resp.err
	}

	return &http.Response{
		StatusCode: resp.status,
		Status:     http.StatusText(resp.status),
		Body:       io.NopCloser(strings.NewReader(resp.body)),
	}, nil
}

func newTestHandler(fetcher *fakeFetcher, sleeps *[]time.Duration) *Handler {
	handler := NewHandler(&schema.OS{}, fetcher)
	handler.sleepFn = func(d time.Duration) {
		if sleeps != nil {
			*sleeps = append(*sleeps, d)
		}
	}

	return handler
}

func writeList(t *testing.T, dir string, filename string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

// TestEnsureAll_DownloadsMissing simulates a fresh wordlist directory whose
// files all need fetching.
func TestEnsureAll_DownloadsMissing(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	fetcher := &fakeFetcher{t: t, responses: []fakeResponse{
		{status: http.StatusOK, body: "alpha\nbeta\n"},
		{status: http.StatusOK, body: "gamma\n"},
	}}

	handler := newTestHandler(fetcher, nil)

	err := handler.EnsureAll(context.Background(), dir)
	require.NoError(t, err, "unexpected error from EnsureAll")

	sources := Sources()
	require.Len(t, fetcher.urls, len(sources))

	for n, source := range sources {
		assert.Equal(t, source.URL, fetcher.urls[n], "fetch order should follow source order")

		content, err := os.ReadFile(filepath.Join(dir, source.Filename))
		require.NoError(t, err, "downloaded file %s should exist", source.Filename)
		assert.NotEmpty(t, content)
	}
}

// TestEnsureAll_SkipsPresent checks that files already on disk are never
// re-fetched.
func TestEnsureAll_SkipsPresent(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	for _, source := range Sources() {
		writeList(t, dir, source.Filename, "word\n")
	}

	fetcher := &fakeFetcher{t: t}
	handler := newTestHandler(fetcher, nil)

	err := handler.EnsureAll(context.Background(), dir)
	require.NoError(t, err, "unexpected error from EnsureAll")
	assert.Zero(t, fetcher.calls, "no fetch should happen for present files")
}

// TestEnsureAll_RetriesWithBackoff simulates two transient failures before a
// successful fetch, with exponentially growing waits in between.
func TestEnsureAll_RetriesWithBackoff(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	fetcher := &fakeFetcher{t: t, responses: []fakeResponse{
		{err: errors.New("connection reset by peer")},
		{err: errors.New("connection reset by peer")},
		{status: http.StatusOK, body: "alpha\n"},
		{status: http.StatusOK, body: "gamma\n"},
	}}

	var sleeps []time.Duration
	handler := newTestHandler(fetcher, &sleeps)

	err := handler.EnsureAll(context.Background(), dir)
	require.NoError(t, err, "unexpected error from EnsureAll")

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps, "backoff should double per attempt")
	assert.Equal(t, 4, fetcher.calls)
}

// TestEnsureAll_Fail_AllAttempts simulates a download that keeps failing; the
// second source must never be attempted after the first one gives up.
func TestEnsureAll_Fail_AllAttempts(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	connErr := errors.New("no route to host")
	fetcher := &fakeFetcher{t: t, responses: []fakeResponse{
		{err: connErr}, {err: connErr}, {err: connErr},
	}}

	handler := newTestHandler(fetcher, &[]time.Duration{})

	err := handler.EnsureAll(context.Background(), dir)
	require.Error(t, err, "expected an error from EnsureAll")
	require.ErrorIs(t, err, ErrDownloadFailed)
	require.ErrorIs(t, err, connErr)
	assert.Equal(t, MaxRetries, fetcher.calls, "all attempts should go to the first source only")
}

// TestEnsureAll_Fail_BadStatus checks that a non-OK response counts as a
// failed attempt and is retried like a transport error.
func TestEnsureAll_Fail_BadStatus(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	fetcher := &fakeFetcher{t: t, responses: []fakeResponse{
		{status: http.StatusNotFound},
		{status: http.StatusNotFound},
		{status: http.StatusNotFound},
	}}

	handler := newTestHandler(fetcher, &[]time.Duration{})

	err := handler.EnsureAll(context.Background(), dir)
	require.Error(t, err, "expected an error from EnsureAll")
	require.ErrorIs(t, err, ErrDownloadFailed)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
}

// TestLoadMerged checks trimming, lowercasing, blank-line skipping and the
// first-occurrence deduplication across both lists.
func TestLoadMerged(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	sources := Sources()
	writeList(t, dir, sources[0].Filename, "Apple\n\n  banana  \ncasa\n")
	writeList(t, dir, sources[1].Filename, "casa\nGATTO\n")

	handler := newTestHandler(&fakeFetcher{t: t}, nil)

	words, err := handler.LoadMerged(dir)
	require.NoError(t, err, "unexpected error from LoadMerged")

	assert.Equal(t, []string{"apple", "banana", "casa", "gatto"}, words)
}

// TestLoadMerged_Fail_MissingFile simulates a wordlist file vanishing between
// the download step and the load step.
func TestLoadMerged_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	sources := Sources()
	writeList(t, dir, sources[0].Filename, "apple\n")

	handler := newTestHandler(&fakeFetcher{t: t}, nil)

	words, err := handler.LoadMerged(dir)
	require.Error(t, err, "expected an error from LoadMerged")
	assert.Nil(t, words, "expected no words on a missing file")
	assert.Contains(t, err.Error(), sources[1].Filename, "error should name the missing file")
}

// TestLoadMerged_Fail_Empty checks that two blank lists are refused rather
// than feeding an empty pool to the generator.
func TestLoadMerged_Fail_Empty(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "wordlists")
	for _, source := range Sources() {
		writeList(t, dir, source.Filename, "\n\n")
	}

	handler := newTestHandler(&fakeFetcher{t: t}, nil)

	words, err := handler.LoadMerged(dir)
	require.Error(t, err, "expected an error from LoadMerged")
	require.ErrorIs(t, err, ErrEmptyWordlist)
	assert.Nil(t, words)
}
