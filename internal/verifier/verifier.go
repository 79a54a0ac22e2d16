// Package verifier implements the final re-inspection of the sandbox helper
// after the correction steps have run.
package verifier

import (
	"fmt"

	"github.com/riccardosarro/sandboxfix/internal/schema"
)

type inspectProvider interface {
	Inspect(path string) (*schema.Snapshot, error)
}

// Result is the outcome of comparing the helper's final state against the
// required one. A mismatch is reported to the operator as a warning only and
// never changes the program's exit status.
type Result struct {
	Match         bool
	ExpectedOwner string
	ActualOwner   string
	ExpectedMode  string
	ActualMode    string
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	inspectHandler inspectProvider
}

// NewHandler returns a pointer to a new verifier [Handler].
func NewHandler(inspectHandler inspectProvider) *Handler {
	return &Handler{
		inspectHandler: inspectHandler,
	}
}

// Verify re-reads owner and mode of the file at path, exactly as the initial
// inspection does, and compares both against target. Only a failure to
// re-inspect is an error; a state mismatch is carried in the [Result].
func (v *Handler) Verify(path string, target schema.Target) (*Result, error) {
	snap, err := v.inspectHandler.Inspect(path)
	if err != nil {
		return nil, fmt.Errorf("(verifier) %w", err)
	}

	return &Result{
		Match:         snap.Owner == target.Owner && snap.Mode == target.Mode,
		ExpectedOwner: target.Owner,
		ActualOwner:   snap.Owner,
		ExpectedMode:  target.Mode,
		ActualMode:    snap.Mode,
	}, nil
}
