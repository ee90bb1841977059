package simulate

import "errors"

// Sentinel kinds for verification errors.
var (
	ErrNotSorted = errors.New("top set not sorted ascending")
	ErrMismatch  = errors.New("ranking results disagree")
)
