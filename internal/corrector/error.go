package corrector

import "errors"

var (
	// ErrOwnershipChange is an error that occurs when the chown syscall on
	// the sandbox helper fails despite the earlier privilege check (e.g. on
	// a read-only filesystem).
	ErrOwnershipChange = errors.New("failed to change ownership")

	// ErrPermissionChange is an error that occurs when the chmod syscall on
	// the sandbox helper fails.
	ErrPermissionChange = errors.New("failed to change permissions")
)
