package passphrase

import (
	"errors"
	"strings"
	"testing"

	"github.com/riccardosarro/sandboxfix/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRand replays a scripted sequence of draws.
type fakeRand struct {
	seq   []int
	calls int
	err   error
}

func (f *fakeRand) Intn(_ int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := f.seq[f.calls%len(f.seq)]
	f.calls++

	return n, nil
}

// TestGenerate checks word selection, joining and that draws happen with
// replacement.
func TestGenerate(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "banana", "casa", "dado", "echo", "fungo"}
	handler := NewHandler(&fakeRand{seq: []int{0, 2, 4, 0, 5}})

	got, err := handler.Generate(words, 5)
	require.NoError(t, err, "unexpected error from Generate")

	assert.Equal(t, "apple-casa-echo-apple-fungo", got)
}

// TestGenerate_Fail_NotEnoughWords checks that a too-small pool is refused.
func TestGenerate_Fail_NotEnoughWords(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&fakeRand{seq: []int{0}})

	got, err := handler.Generate([]string{"apple", "banana"}, NumWords)
	require.Error(t, err, "expected an error from Generate")
	require.ErrorIs(t, err, ErrNotEnoughWords)
	assert.Empty(t, got)
}

// TestGenerate_Fail_RandError checks that a failing random source never
// yields a partial passphrase.
func TestGenerate_Fail_RandError(t *testing.T) {
	t.Parallel()

	randErr := errors.New("entropy source unavailable")
	handler := NewHandler(&fakeRand{err: randErr})

	got, err := handler.Generate([]string{"apple", "banana", "casa", "dado", "echo"}, NumWords)
	require.Error(t, err, "expected an error from Generate")
	require.ErrorIs(t, err, randErr)
	assert.Empty(t, got)
}

// TestGenerate_RealRand draws from the real random source and checks shape
// only.
func TestGenerate_RealRand(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "banana", "casa", "dado", "echo", "fungo"}
	handler := NewHandler(&schema.Rand{})

	got, err := handler.Generate(words, NumWords)
	require.NoError(t, err, "unexpected error from Generate")

	parts := strings.Split(got, Separator)
	require.Len(t, parts, NumWords)

	for _, part := range parts {
		assert.Contains(t, words, part, "every part must come from the pool")
	}
}

// TestEntropyBits checks the strength estimate for known pool sizes.
func TestEntropyBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		poolSize int
		count    int
		want     float64
	}{
		{"power-of-two pool", 1 << 20, 5, 100},
		{"single word", 4096, 1, 12},
		{"empty pool", 0, 5, 0},
		{"degenerate pool", 1, 5, 0},
		{"no words", 1 << 20, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, EntropyBits(tt.poolSize, tt.count), 1e-9)
		})
	}
}
