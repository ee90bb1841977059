package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrInvalidInterval reports a non-positive reporting interval.
	// This is a caller contract violation, not a recoverable condition.
	ErrInvalidInterval = errors.New("reporting interval must be positive")
)
