// Package schema provides the principal structures that are shared between
// the program's packages, as well as implementations wrapping the operating
// system functions that the other packages consume through small interfaces.
package schema

// Target describes the required state of the sandbox helper: where to look
// for it and which owner and permission mode it must end up with.
type Target struct {
	BrowserRoot string
	HelperName  string
	Owner       string
	Mode        string
}

// Snapshot is the observed state of the sandbox helper at one point in time.
// The permission mode is kept as an octal string without leading zeros (e.g.
// "4755" or "644") and is compared by exact string equality throughout.
type Snapshot struct {
	Path  string
	Owner string
	UID   uint32
	GID   uint32
	Mode  string
	Size  int64
}
