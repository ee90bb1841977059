// Package stream defines the contract for ordered player sources consumed
// by the streaming ranking engine.
//
// A Source is a forward, non-repeating, non-skipping cursor: it delivers each
// player exactly once, declares how many remain, and signals exhaustion with
// an explicit error rather than a panic.
package stream

import (
	"github.com/okian/ladder/internal/domain/model"
)

// Source produces players one at a time.
type Source interface {
	// Remaining returns the number of not-yet-delivered players.
	// It is pure and has no side effects.
	Remaining() int

	// Next delivers the next player and advances the cursor by one.
	// It returns ErrExhausted if called when Remaining() == 0.
	Next() (model.Player, error)
}

// SliceSource streams the contents of an in-memory roster, start to end.
type SliceSource struct {
	players []model.Player
	current int
}

// NewSliceSource constructs a SliceSource over the given roster.
// The roster is not copied; callers must not mutate it while streaming.
func NewSliceSource(players []model.Player) *SliceSource {
	return &SliceSource{players: players}
}

// Remaining returns the number of players left to be read.
func (s *SliceSource) Remaining() int {
	return len(s.players) - s.current
}

// Next returns the next player in sequence.
func (s *SliceSource) Next() (model.Player, error) {
	if s.Remaining() == 0 {
		return model.Player{}, ErrExhausted
	}
	p := s.players[s.current]
	s.current++
	return p, nil
}
