package wordlist

import "errors"

var (
	// ErrDownloadFailed is an error that occurs when a wordlist could not be
	// fetched within the allowed number of attempts.
	ErrDownloadFailed = errors.New("failed to download wordlist")

	// ErrUnexpectedStatus is an error that occurs when the remote answers a
	// wordlist fetch with a non-OK HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrEmptyWordlist is an error that occurs when the merged wordlist ends
	// up containing no words at all.
	ErrEmptyWordlist = errors.New("merged wordlist is empty")
)
