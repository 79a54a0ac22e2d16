// Package passphrase implements drawing random words from a merged wordlist
// into a joined passphrase and estimating the strength of the result.
package passphrase

import (
	"fmt"
	"math"
	"strings"
)

const (
	// NumWords is the number of words a generated passphrase consists of.
	NumWords = 5

	// Separator joins the chosen words in the final passphrase.
	Separator = "-"
)

type randProvider interface {
	Intn(n int) (int, error)
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	randHandler randProvider
}

// NewHandler returns a pointer to a new passphrase [Handler].
func NewHandler(randHandler randProvider) *Handler {
	return &Handler{
		randHandler: randHandler,
	}
}

// Generate returns a passphrase of count words drawn uniformly and
// independently from words. Draws are with replacement, so a word can appear
// more than once within a single passphrase.
func (p *Handler) Generate(words []string, count int) (string, error) {
	if len(words) < count {
		return "", fmt.Errorf("(passphrase) need %d words but have %d: %w", count, len(words), ErrNotEnoughWords)
	}

	chosen := make([]string, 0, count)

	for i := 0; i < count; i++ {
		n, err := p.randHandler.Intn(len(words))
		if err != nil {
			return "", fmt.Errorf("(passphrase) failed to draw a random word: %w", err)
		}

		chosen = append(chosen, words[n])
	}

	return strings.Join(chosen, Separator), nil
}

// EntropyBits estimates the strength in bits of a count-word passphrase drawn
// with replacement from a pool of the given size.
func EntropyBits(poolSize int, count int) float64 {
	if poolSize <= 1 || count <= 0 {
		return 0
	}

	return float64(count) * math.Log2(float64(poolSize))
}
