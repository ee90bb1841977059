package stream

import (
	"github.com/okian/ladder/internal/domain/model"
)

// Default channel source configuration constants.
const (
	defaultChannelBuffer = 1024
)

// ChannelSource adapts a bounded channel to the Source contract so a
// producer goroutine can feed the streaming engine without materializing
// the whole roster. The producer declares the total count up front and
// must send exactly that many players before closing the channel.
type ChannelSource struct {
	players   <-chan model.Player
	delivered int
	total     int
}

// ChannelOption applies a configuration option to a channel feed.
type ChannelOption func(*channelFeed)

type channelFeed struct {
	buffer int
}

// WithBuffer sets the feed channel's buffer size.
func WithBuffer(size int) ChannelOption {
	return func(f *channelFeed) {
		if size > 0 {
			f.buffer = size
		}
	}
}

// NewChannelSource returns a source expecting total players and the send
// side of its feed channel. The caller owns the send side and must close
// it after sending exactly total players.
func NewChannelSource(total int, opts ...ChannelOption) (*ChannelSource, chan<- model.Player) {
	f := &channelFeed{buffer: defaultChannelBuffer}
	for _, opt := range opts {
		opt(f)
	}

	ch := make(chan model.Player, f.buffer)
	return &ChannelSource{players: ch, total: total}, ch
}

// Remaining returns the number of players not yet delivered to the consumer.
// Players still in flight on the channel count as remaining.
func (s *ChannelSource) Remaining() int {
	return s.total - s.delivered
}

// Next blocks until the producer supplies the next player. A producer that
// closes the feed short of the declared total surfaces ErrExhausted.
func (s *ChannelSource) Next() (model.Player, error) {
	if s.Remaining() == 0 {
		return model.Player{}, ErrExhausted
	}
	p, ok := <-s.players
	if !ok {
		return model.Player{}, ErrExhausted
	}
	s.delivered++
	return p, nil
}
