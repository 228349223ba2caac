package e2e

import (
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"gocv.io/x/gocv"

	"github.com/ayusman/handrps/internal/app"
	"github.com/ayusman/handrps/internal/capture"
	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
	"github.com/ayusman/handrps/internal/hook"
	"github.com/ayusman/handrps/internal/render"
	"github.com/ayusman/handrps/internal/server"
)

// tickingKeys advances the mock clock by one frame per poll and replays
// keys in order.
type tickingKeys struct {
	clock *quartz.Mock
	frame time.Duration
	keys  render.KeySource
}

func (k *tickingKeys) PollKey() game.Key {
	k.clock.Advance(k.frame)
	return k.keys.PollKey()
}

func TestE2E_CompleteRound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}
	if runtime.GOOS == "windows" {
		t.Skip("hooks are shell scripts")
	}

	tmpDir := t.TempDir()
	logger := log.New(io.Discard)

	// A hook that records the round it receives.
	hookDir := filepath.Join(tmpDir, "hooks", "recorder")
	if err := os.MkdirAll(hookDir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	manifest := `{"name":"recorder","version":"1.0.0","executable":"run.sh"}`
	if err := os.WriteFile(filepath.Join(hookDir, hook.ManifestFile), []byte(manifest), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(hookDir, "run.sh"), []byte("#!/bin/sh\ncat > round.json\n"), 0755); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	manager := hook.NewManager(filepath.Join(tmpDir, "hooks"))
	if err := manager.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	dispatcher := hook.NewDispatcher(manager, hook.NewExecutor(5*time.Second), logger)
	defer dispatcher.Close()

	clock := quartz.NewMock(t)
	controller := game.NewController(
		game.WithClock(clock),
		game.WithRand(rand.New(rand.NewPCG(7, 7))),
		game.WithLogger(logger),
		game.WithRoundHandler(dispatcher.Notify),
	)

	feed := server.NewFeed()
	ts := httptest.NewServer(server.New(server.Config{Feed: feed, Logger: logger}))
	defer ts.Close()

	blank := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer blank.Close()
	cam := capture.NewMockCamera([]*gocv.Mat{&blank}, true)
	// The round locks in near frame 62; stop while the result is still up.
	cam.SetLimit(90)

	det := detector.NewMockDetector()
	det.SetHands([]detector.HandLandmarks{detector.ScissorsLandmarks()})

	keys := make(chan game.Key, 1)
	keys <- game.KeyStart

	application, err := app.New(app.Config{
		Camera:     cam,
		Detector:   det,
		Controller: controller,
		Display: render.NewHeadless(&tickingKeys{
			clock: clock,
			frame: 50 * time.Millisecond,
			keys:  render.NewChannelKeys(keys),
		}),
		Publisher: feed,
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	defer application.Close()

	t.Run("PlayRound", func(t *testing.T) {
		if err := application.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got := controller.Score().Rounds(); got != 1 {
			t.Fatalf("rounds = %d, want 1", got)
		}
	})

	t.Run("StateEndpoint", func(t *testing.T) {
		resp, err := ts.Client().Get(ts.URL + "/api/state")
		if err != nil {
			t.Fatalf("GET /api/state error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var state map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if state["phase"] != "RESULT" {
			t.Errorf("phase = %v, want RESULT", state["phase"])
		}
		if state["player"] != "SCISSORS" {
			t.Errorf("player = %v, want SCISSORS", state["player"])
		}
		if state["round_id"] == nil {
			t.Error("expected a round id")
		}
	})

	t.Run("HookNotified", func(t *testing.T) {
		dispatcher.Wait()

		data, err := os.ReadFile(filepath.Join(hookDir, "round.json"))
		if err != nil {
			t.Fatalf("hook did not run: %v", err)
		}

		var event hook.Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("decode event error = %v", err)
		}
		if event.Player != "SCISSORS" {
			t.Errorf("event player = %q, want SCISSORS", event.Player)
		}
		if event.Outcome == "" {
			t.Error("expected an outcome")
		}
		if event.Score != controller.Score() {
			t.Errorf("event score = %+v, want %+v", event.Score, controller.Score())
		}
	})
}
