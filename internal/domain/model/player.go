// Package model contains domain models passed between layers.
package model

// Player is a single ranked record. Level is the only ordering key;
// ID and Name are opaque payload carried along with it.
type Player struct {
	ID    string // unique id, assigned by the producer
	Name  string // display name
	Level int    // ranking key, ascending
}

// Less reports whether p ranks strictly below o. Equal levels are
// order-equivalent for ranking purposes.
func (p Player) Less(o Player) bool {
	return p.Level < o.Level
}
