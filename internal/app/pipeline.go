package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayusman/handrps/internal/capture"
	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
)

// Run opens the camera and processes frames until the quit key is pressed,
// the camera stops delivering frames or ctx is cancelled. Each of those is
// a normal exit; only a camera that cannot be opened is an error.
//
// Per frame:
//  1. read and mirror a camera frame
//  2. detect hands and classify the primary one
//  3. step the round controller with the stable gesture
//  4. draw the overlay, publish and show the frame
//  5. poll for a key
func (a *App) Run(ctx context.Context) error {
	cam := a.config.Camera
	if err := cam.Open(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	defer func() {
		if err := cam.Close(); err != nil {
			a.config.Logger.Warn("closing camera", "err", err)
		}
	}()

	a.config.Logger.Info("game loop started", "fps", cam.FPS())

	for {
		if ctx.Err() != nil {
			a.config.Logger.Info("game loop cancelled")
			return nil
		}

		if !a.step() {
			return nil
		}
	}
}

// step runs one frame and reports whether the loop should continue.
func (a *App) step() bool {
	logger := a.config.Logger

	frame, err := a.config.Camera.ReadFrame()
	if err != nil {
		if errors.Is(err, capture.ErrEndOfStream) {
			logger.Info("camera stream ended")
		} else {
			logger.Warn("frame read failed, stopping", "err", err)
		}
		return false
	}
	defer frame.Close()

	hands, err := a.config.Detector.Detect(frame)
	if err != nil {
		logger.Debug("hand detection failed", "err", err)
		hands = nil
	}

	reading := a.classifier.Observe(detector.Primary(hands))
	view := a.config.Controller.Step(reading.Stable)

	a.config.Overlay.Draw(frame, view, reading.Hand)
	if a.config.Publisher != nil {
		a.config.Publisher.Publish(view, frame)
	}
	if err := a.config.Display.Show(frame); err != nil {
		logger.Warn("showing frame", "err", err)
	}

	a.mu.Lock()
	a.view = view
	a.frames++
	a.mu.Unlock()

	switch key := a.config.Display.PollKey(); key {
	case game.KeyQuit:
		logger.Info("quit requested")
		return false
	case game.KeyNone:
	default:
		a.config.Controller.Press(key)
	}
	return true
}
