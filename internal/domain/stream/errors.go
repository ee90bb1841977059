package stream

import "errors"

// Sentinel kinds for source errors.
var (
	// ErrExhausted is returned by Next when a source is asked for a player
	// with none remaining. Under a correct consumer, which checks Remaining
	// first, it never surfaces.
	ErrExhausted = errors.New("player source exhausted")
)
