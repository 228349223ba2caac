// Package tray provides the system tray menu used when the game runs without
// a window.
package tray

import (
	"context"
	"sync"

	"github.com/getlantern/systray"

	"github.com/ayusman/handrps/internal/game"
)

// Tray is the system tray menu. Start and Quit clicks are delivered as
// game keys; the score and last round are shown as disabled items.
type Tray struct {
	keys   chan game.Key
	ready  chan struct{}
	onOpen func()
	mu     sync.RWMutex

	// Menu items stored for later updates
	menuScore     *systray.MenuItem
	menuLastRound *systray.MenuItem
}

// New creates a new Tray.
func New() *Tray {
	return &Tray{
		keys:  make(chan game.Key, 4),
		ready: make(chan struct{}),
	}
}

// Keys returns the channel of key events from the menu.
func (t *Tray) Keys() <-chan game.Key {
	return t.keys
}

// OnOpen sets the callback for the "Open viewer" menu item.
func (t *Tray) OnOpen(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpen = fn
}

// Run starts the system tray application.
// This function blocks until Quit is called and must run on the main thread.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit removes the tray icon and makes Run return. Called before the tray
// is ready, it takes effect once the menu is up.
func (t *Tray) Quit() {
	go func() {
		<-t.ready
		systray.Quit()
	}()
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("RPS")
	systray.SetTooltip("Gesture Rock Paper Scissors")

	menuStart := systray.AddMenuItem("Start round", "Start the countdown")
	systray.AddSeparator()

	t.mu.Lock()
	t.menuScore = systray.AddMenuItem(ScoreTitle(game.Score{}), "Running score")
	t.menuScore.Disable()
	t.menuLastRound = systray.AddMenuItem(LastRoundTitle(game.View{}), "Last round")
	t.menuLastRound.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuOpen := systray.AddMenuItem("Open viewer...", "Watch the game in a browser")
	menuQuit := systray.AddMenuItem("Quit", "Quit the game")
	close(t.ready)

	go func() {
		for {
			select {
			case <-menuStart.ClickedCh:
				t.push(game.KeyStart)
			case <-menuOpen.ClickedCh:
				t.handleOpen()
			case <-menuQuit.ClickedCh:
				t.push(game.KeyQuit)
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

// push queues a key for the game loop, dropping it if the loop is behind.
func (t *Tray) push(k game.Key) {
	select {
	case t.keys <- k:
	default:
	}
}

func (t *Tray) handleOpen() {
	t.mu.RLock()
	callback := t.onOpen
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// Update shows the score and, once a round has been played, its result.
func (t *Tray) Update(v game.View) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScore != nil {
		t.menuScore.SetTitle(ScoreTitle(v.Score))
	}
	if t.menuLastRound != nil && v.Outcome != game.NoOutcome {
		t.menuLastRound.SetTitle(LastRoundTitle(v))
	}
}

// Watch calls Update for every view received until ctx is done or views
// is closed.
func (t *Tray) Watch(ctx context.Context, views <-chan game.View) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-views:
			if !ok {
				return
			}
			t.Update(v)
		}
	}
}

// ScoreTitle is the menu text for the score.
func ScoreTitle(s game.Score) string {
	return s.String()
}

// LastRoundTitle is the menu text for the last round in v.
func LastRoundTitle(v game.View) string {
	if v.Outcome == game.NoOutcome {
		return "Last: none"
	}
	return "Last: " + v.Player.String() + " vs " + v.Bot.String() + " - " + v.Outcome.String()
}
