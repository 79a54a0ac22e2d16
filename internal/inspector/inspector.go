// Package inspector implements reading the owner and permission mode of the
// located sandbox helper into a [schema.Snapshot].
package inspector

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/riccardosarro/sandboxfix/internal/schema"
	"golang.org/x/sys/unix"
)

const modeBits = uint32(07777)

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

type userProvider interface {
	LookupId(uid string) (*user.User, error)
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	unixHandler unixProvider
	userHandler userProvider
}

// NewHandler returns a pointer to a new inspector [Handler].
func NewHandler(unixHandler unixProvider, userHandler userProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
		userHandler: userHandler,
	}
}

// Inspect returns a [schema.Snapshot] of the file at path. A file that cannot
// be stat'ed or whose owning UID cannot be resolved to a user name is an
// explicit error; the snapshot never carries empty values. The path must
// already be known to exist, so any failure here points to a race with
// concurrent external modification.
func (i *Handler) Inspect(path string) (*schema.Snapshot, error) {
	var stat unix.Stat_t

	if err := i.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(inspector) failed to lstat %s: %w", path, err)
	}

	owner, err := i.userHandler.LookupId(strconv.FormatUint(uint64(stat.Uid), 10))
	if err != nil {
		return nil, fmt.Errorf("(inspector) failed to resolve uid %d of %s: %w", stat.Uid, path, err)
	}

	return &schema.Snapshot{
		Path:  path,
		Owner: owner.Username,
		UID:   stat.Uid,
		GID:   stat.Gid,
		Mode:  FormatMode(uint32(stat.Mode)),
		Size:  stat.Size,
	}, nil
}

// FormatMode renders the permission bits, including setuid/setgid/sticky, as
// an octal string without leading zeros, e.g. "4755", "755" or "644". Mode
// strings are compared by exact string equality everywhere downstream, so
// this is the single canonical formatting function.
func FormatMode(mode uint32) string {
	return strconv.FormatUint(uint64(mode&modeBits), 8)
}
