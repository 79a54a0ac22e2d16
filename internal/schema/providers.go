package schema

import (
	"context"
	"crypto/rand"
	"math/big"
	"net/http"
)

// HTTP is an implementation wrapping an [http.Client] for remote fetches.
type HTTP struct {
	Client *http.Client
}

// Get performs a context-bound GET request through the wrapped client.
func (h *HTTP) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return h.Client.Do(req)
}

// Rand is an implementation wrapping cryptographically secure random draws.
type Rand struct{}

// Intn returns a uniform random int in [0, n), read from [rand.Reader].
func (*Rand) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(v.Int64()), nil
}
