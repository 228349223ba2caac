package render

import "github.com/ayusman/handrps/internal/game"

// KeySource yields at most one key event per frame.
type KeySource interface {
	PollKey() game.Key
}

const (
	keyQuit  = 'q'
	keySpace = ' '
)

// KeyFromCode maps a raw key code from the window to a game key.
// Everything other than q and space is ignored.
func KeyFromCode(code int) game.Key {
	if code < 0 {
		return game.KeyNone
	}
	switch code & 0xFF {
	case keyQuit:
		return game.KeyQuit
	case keySpace:
		return game.KeyStart
	default:
		return game.KeyNone
	}
}

// ChannelKeys is a KeySource fed from a channel, used when keys come from
// somewhere other than the window (the tray menu, tests).
type ChannelKeys struct {
	keys <-chan game.Key
}

// NewChannelKeys creates a KeySource reading from keys.
func NewChannelKeys(keys <-chan game.Key) *ChannelKeys {
	return &ChannelKeys{keys: keys}
}

// PollKey returns the next pending key without blocking. A closed channel
// reads as quit.
func (c *ChannelKeys) PollKey() game.Key {
	select {
	case k, ok := <-c.keys:
		if !ok {
			return game.KeyQuit
		}
		return k
	default:
		return game.KeyNone
	}
}
