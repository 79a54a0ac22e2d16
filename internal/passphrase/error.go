package passphrase

import "errors"

// ErrNotEnoughWords is an error that occurs when the merged wordlist holds
// fewer words than a single passphrase needs.
var ErrNotEnoughWords = errors.New("not enough words in the wordlist")
