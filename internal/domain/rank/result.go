// Package rank implements the player-ranking engines: a streaming top-K
// engine that bounds memory while consuming a source once, and two batch
// engines that partially sort an in-memory roster in place.
package rank

import (
	"time"

	"github.com/okian/ladder/internal/domain/model"
)

// Result is the shared output of every ranking engine.
type Result struct {
	// Top holds the selected players sorted ascending by level
	// (lowest first, highest last).
	Top []model.Player

	// Cutoffs maps a processed-player count to the minimum level present
	// in the top set at that count. Only the streaming engine records
	// cutoffs; batch engines always return an empty map.
	//
	// Example for a 132-player stream with a reporting interval of 50:
	//
	//   {50: 239, 100: 992, 132: 994}
	//
	// The final processed count is always present, even when it is not a
	// multiple of the reporting interval.
	Cutoffs map[int]int

	// Elapsed is the wall-clock duration of the selection/sort work only.
	// For the streaming engine it excludes time spent fetching from the
	// source.
	Elapsed time.Duration
}
