package items

import "errors"

// ErrNoItems is returned by [Parse] when the raw item text contains no
// non-blank lines. It is the parser's only failure mode.
var ErrNoItems = errors.New("add at least 1 item line")
