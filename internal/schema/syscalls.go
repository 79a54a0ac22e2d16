package schema

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Geteuid wraps around [os.Geteuid].
func (*OS) Geteuid() int {
	return os.Geteuid()
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll wraps around [os.MkdirAll].
func (*OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Create wraps around [os.Create].
func (*OS) Create(name string) (*os.File, error) {
	return os.Create(name)
}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// UserHomeDir wraps around [os.UserHomeDir].
func (*OS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Chown wraps around [unix.Chown].
func (*Unix) Chown(path string, uid, gid int) error {
	return unix.Chown(path, uid, gid)
}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// Users is an implementation wrapping user database functions.
type Users struct{}

// LookupId wraps around [user.LookupId].
//
//nolint:revive,stylecheck
func (*Users) LookupId(uid string) (*user.User, error) {
	return user.LookupId(uid)
}

// Lookup wraps around [user.Lookup].
func (*Users) Lookup(username string) (*user.User, error) {
	return user.Lookup(username)
}

// FileWalker is an implementation wrapping filesystem traversal functions.
type FileWalker struct{}

// WalkDir wraps around [filepath.WalkDir].
func (*FileWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
