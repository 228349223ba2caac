package render

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/game"
)

// WindowName is the title of the game window.
const WindowName = "Gesture RPS"

// Display presents composed frames and supplies key events.
type Display interface {
	KeySource
	Show(frame *gocv.Mat) error
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
// It must be used from the thread that created it.
type Window struct {
	window *gocv.Window
	// waitMs is the key wait per frame; it also paces the loop.
	waitMs int
}

// NewWindow opens the game window, fullscreen when requested.
func NewWindow(fullscreen bool) *Window {
	w := gocv.NewWindow(WindowName)
	if fullscreen {
		w.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	}
	return &Window{window: w, waitMs: 1}
}

// Show displays frame.
func (w *Window) Show(frame *gocv.Mat) error {
	w.window.IMShow(*frame)
	return nil
}

// PollKey waits briefly for a key press and maps it to a game key.
func (w *Window) PollKey() game.Key {
	return KeyFromCode(w.window.WaitKey(w.waitMs))
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

// Headless is a Display that shows nothing. Keys come from another source.
type Headless struct {
	KeySource
}

// NewHeadless creates a Headless display reading keys from keys.
func NewHeadless(keys KeySource) *Headless {
	return &Headless{KeySource: keys}
}

// Show discards the frame.
func (h *Headless) Show(frame *gocv.Mat) error {
	return nil
}

// Close is a no-op.
func (h *Headless) Close() error {
	return nil
}
