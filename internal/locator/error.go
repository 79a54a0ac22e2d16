package locator

import "errors"

// ErrHelperNotFound is an error that occurs when no sandbox helper exists
// anywhere below the configured browser installation root.
var ErrHelperNotFound = errors.New("sandbox helper not found")
