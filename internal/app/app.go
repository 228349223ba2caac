// Package app runs the game loop that ties the camera, hand detector,
// gesture classifier, round controller and display together.
package app

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/capture"
	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
	"github.com/ayusman/handrps/internal/gesture"
	"github.com/ayusman/handrps/internal/render"
)

// ErrMissingComponent is returned by New when a required collaborator is nil.
var ErrMissingComponent = errors.New("missing component")

// Publisher receives every composed frame and its view.
type Publisher interface {
	Publish(v game.View, frame *gocv.Mat)
}

// Config holds the collaborators of the game loop. Camera, Detector,
// Controller and Display are required.
type Config struct {
	Camera     capture.Camera
	Detector   detector.Detector
	Controller *game.Controller
	Display    render.Display
	Overlay    *render.Overlay
	Publisher  Publisher
	Logger     *log.Logger
}

// App is the single-threaded frame loop.
type App struct {
	config     Config
	classifier *gesture.Classifier

	mu     sync.RWMutex
	view   game.View
	frames int
}

// New creates an App from config.
func New(config Config) (*App, error) {
	switch {
	case config.Camera == nil:
		return nil, errMissing("camera")
	case config.Detector == nil:
		return nil, errMissing("detector")
	case config.Controller == nil:
		return nil, errMissing("controller")
	case config.Display == nil:
		return nil, errMissing("display")
	}

	if config.Overlay == nil {
		config.Overlay = render.NewOverlay()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	return &App{
		config:     config,
		classifier: gesture.NewClassifier(),
	}, nil
}

func errMissing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingComponent, name)
}

// View returns the view rendered on the most recent frame.
func (a *App) View() game.View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// Frames returns how many frames the loop has processed.
func (a *App) Frames() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frames
}

// Controller returns the round controller.
func (a *App) Controller() *game.Controller {
	return a.config.Controller
}

// Close releases the detector and the display.
func (a *App) Close() error {
	return errors.Join(
		a.config.Detector.Close(),
		a.config.Display.Close(),
	)
}
