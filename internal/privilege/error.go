package privilege

import "errors"

// ErrNotElevated is an error that occurs when the program is invoked without
// root-equivalent privileges, which are needed to change the helper's owner.
var ErrNotElevated = errors.New("not running with elevated privileges (try sudo)")
