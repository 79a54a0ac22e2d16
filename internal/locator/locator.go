// Package locator implements the recursive search for the sandbox helper
// binary below the embedded browser's installation root.
package locator

import (
	"context"
	"fmt"
	"io/fs"
)

type walkProvider interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	walkHandler walkProvider
}

// NewHandler returns a pointer to a new locator [Handler].
func NewHandler(walkHandler walkProvider) *Handler {
	return &Handler{
		walkHandler: walkHandler,
	}
}

// Locate walks the directory tree below root and returns the absolute path of
// the first regular file whose name matches name exactly. The first match in
// traversal order wins; unreadable entries are skipped rather than surfaced,
// so a permission problem in an unrelated subdirectory cannot abort the
// search. When nothing matches, [ErrHelperNotFound] is returned naming the
// expected location.
func (l *Handler) Locate(ctx context.Context, root string, name string) (string, error) {
	var found string

	err := l.walkHandler.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return nil
		}

		if d.IsDir() || d.Name() != name || !d.Type().IsRegular() {
			return nil
		}

		found = path

		return fs.SkipAll
	})
	if err != nil {
		return "", fmt.Errorf("(locator) failed to walk %s: %w", root, err)
	}

	if found == "" {
		return "", fmt.Errorf("(locator) no %q below %s: %w", name, root, ErrHelperNotFound)
	}

	return found, nil
}
