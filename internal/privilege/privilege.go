// Package privilege implements the guard that ensures the program runs with
// the elevated rights needed to change ownership of the sandbox helper.
package privilege

import (
	"fmt"
)

type osProvider interface {
	Geteuid() int
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new privilege [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// EnsureElevated returns [ErrNotElevated] when the process does not run with
// an effective UID of root. It must pass before any filesystem access occurs,
// so a refused run leaves the system untouched.
func (p *Handler) EnsureElevated() error {
	if euid := p.osHandler.Geteuid(); euid != 0 {
		return fmt.Errorf("(privilege) running as uid %d: %w", euid, ErrNotElevated)
	}

	return nil
}
