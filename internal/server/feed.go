package server

import (
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/game"
)

// Feed holds the latest view and composed frame published by the game loop
// and fans view changes out to subscribers.
type Feed struct {
	mu        sync.RWMutex
	view      game.View
	hasView   bool
	frame     []byte
	subs      map[chan game.View]struct{}
	streamers atomic.Int32
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{
		subs: make(map[chan game.View]struct{}),
	}
}

// Publish records the view for this frame. The frame is JPEG-encoded only
// while a stream client is watching. Subscribers are notified when the view
// differs from the previous one; slow subscribers only see the latest.
func (f *Feed) Publish(v game.View, frame *gocv.Mat) {
	var encoded []byte
	if frame != nil && !frame.Empty() && f.streamers.Load() > 0 {
		if buf, err := gocv.IMEncode(".jpg", *frame); err == nil {
			encoded = append([]byte(nil), buf.GetBytes()...)
			buf.Close()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if encoded != nil {
		f.frame = encoded
	}
	if f.hasView && f.view == v {
		return
	}
	f.view = v
	f.hasView = true

	for ch := range f.subs {
		offer(ch, v)
	}
}

// offer delivers v, replacing any undelivered older view.
func offer(ch chan game.View, v game.View) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// View returns the latest view and whether one has been published.
func (f *Feed) View() (game.View, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.view, f.hasView
}

// Frame returns the latest encoded frame, nil before a stream client has
// caused one to be encoded.
func (f *Feed) Frame() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.frame
}

// Subscribe registers for view changes. The returned function unsubscribes.
func (f *Feed) Subscribe() (<-chan game.View, func()) {
	ch := make(chan game.View, 1)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active view subscribers.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

// watchFrames asks publishers to encode frames until the returned function
// is called.
func (f *Feed) watchFrames() func() {
	f.streamers.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { f.streamers.Add(-1) })
	}
}
