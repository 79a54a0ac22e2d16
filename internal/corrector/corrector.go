// Package corrector implements the two conditional repair steps that bring
// the sandbox helper to its required owner and permission mode.
package corrector

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/riccardosarro/sandboxfix/internal/schema"
)

type unixProvider interface {
	Chown(path string, uid, gid int) error
	Chmod(path string, mode uint32) error
}

type userProvider interface {
	Lookup(username string) (*user.User, error)
}

// Applied records which of the two correction steps actually ran. A step is
// skipped whenever the observed value already equals the required one, so a
// second run on a repaired helper performs no mutating syscalls at all.
type Applied struct {
	Ownership   bool
	Permissions bool
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	unixHandler unixProvider
	userHandler userProvider
}

// NewHandler returns a pointer to a new corrector [Handler].
func NewHandler(unixHandler unixProvider, userHandler userProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
		userHandler: userHandler,
	}
}

// Apply conditionally corrects ownership and then permissions of the file
// described by snap towards target. The steps are independent: ownership is
// attempted first and a failure there is fatal, so the permission step never
// runs after a failed chown. There is no rollback between the two steps; a
// failure can leave the file partially modified. Modes are compared as
// strings, not as numeric bitmasks.
func (c *Handler) Apply(snap *schema.Snapshot, target schema.Target) (Applied, error) {
	var applied Applied

	if snap.Owner != target.Owner {
		owner, err := c.userHandler.Lookup(target.Owner)
		if err != nil {
			return applied, fmt.Errorf("(corrector) failed to resolve owner %q: %w", target.Owner, err)
		}

		uid, err := strconv.Atoi(owner.Uid)
		if err != nil {
			return applied, fmt.Errorf("(corrector) unusable uid %q for owner %q: %w", owner.Uid, target.Owner, err)
		}

		if err := c.unixHandler.Chown(snap.Path, uid, int(snap.GID)); err != nil {
			return applied, fmt.Errorf("(corrector) %w on %s: %w", ErrOwnershipChange, snap.Path, err)
		}

		applied.Ownership = true
	}

	if snap.Mode != target.Mode {
		mode, err := strconv.ParseUint(target.Mode, 8, 32)
		if err != nil {
			return applied, fmt.Errorf("(corrector) unusable mode %q: %w", target.Mode, err)
		}

		if err := c.unixHandler.Chmod(snap.Path, uint32(mode)); err != nil {
			return applied, fmt.Errorf("(corrector) %w on %s: %w", ErrPermissionChange, snap.Path, err)
		}

		applied.Permissions = true
	}

	return applied, nil
}
