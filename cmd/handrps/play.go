package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ayusman/handrps/internal/app"
	"github.com/ayusman/handrps/internal/capture"
	"github.com/ayusman/handrps/internal/detector"
	"github.com/ayusman/handrps/internal/game"
	"github.com/ayusman/handrps/internal/hook"
	"github.com/ayusman/handrps/internal/render"
	"github.com/ayusman/handrps/internal/server"
	"github.com/ayusman/handrps/internal/tray"
)

const playCommand = "play"

// PlayCmd runs the game.
type PlayCmd struct {
	Camera      int           `kong:"default='0',env='HANDRPS_CAMERA',help='Camera device index'"`
	Width       int           `kong:"default='640',help='Capture width'"`
	Height      int           `kong:"default='480',help='Capture height'"`
	Mirror      bool          `kong:"default='true',negatable,help='Mirror frames like a selfie view'"`
	Fullscreen  bool          `kong:"default='true',negatable,help='Open the game window fullscreen'"`
	Headless    bool          `kong:"env='HANDRPS_HEADLESS',help='Run without a window and control the game from the tray'"`
	Addr        string        `kong:"env='HANDRPS_ADDR',help='Spectator server address such as :8080, disabled when empty'"`
	Hooks       string        `kong:"help='Round hook directory (default: <data dir>/hooks)'"`
	HookTimeout time.Duration `kong:"default='5s',help='Time limit for each hook run'"`
	Countdown   int           `kong:"default='3',help='Number the countdown starts at'"`
	Tick        time.Duration `kong:"default='1s',help='Time between countdown steps'"`
	ResultHold  time.Duration `kong:"default='3s',help='How long the result stays up'"`
	Seed        *uint64       `kong:"help='Seed for the bot, random when unset'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger := g.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		return fmt.Errorf("hand detector unavailable: %w", err)
	}

	dispatcher := c.hooks(g.home, logger)
	defer dispatcher.Close()

	controller := game.NewController(
		game.WithConfig(game.Config{
			CountdownFrom: c.Countdown,
			Tick:          c.Tick,
			ResultHold:    c.ResultHold,
		}),
		game.WithRand(c.rng()),
		game.WithLogger(logger.WithPrefix("game")),
		game.WithRoundHandler(dispatcher.Notify),
	)

	feed := server.NewFeed()
	if c.Addr != "" {
		shutdown := c.serve(feed, logger)
		defer shutdown()
	}

	cam := capture.NewCamera(capture.Config{
		DeviceID: c.Camera,
		Width:    c.Width,
		Height:   c.Height,
		FPS:      capture.DefaultFPS,
		Mirror:   c.Mirror,
	})

	cfg := app.Config{
		Camera:     cam,
		Detector:   det,
		Controller: controller,
		Publisher:  feed,
		Logger:     logger,
	}

	if c.Headless {
		return c.runHeadless(ctx, cfg, feed, logger)
	}

	cfg.Display = render.NewWindow(c.Fullscreen)
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	err = a.Run(ctx)
	logger.Info("game over", "score", controller.Score())
	return err
}

// runHeadless runs the loop in the background while the tray owns the
// main thread.
func (c *PlayCmd) runHeadless(ctx context.Context, cfg app.Config, feed *server.Feed, logger *log.Logger) error {
	t := tray.New()
	if c.Addr != "" {
		url := viewerURL(c.Addr)
		t.OnOpen(func() {
			if err := openBrowser(url); err != nil {
				logger.Warn("opening viewer", "url", url, "err", err)
			}
		})
	}

	cfg.Display = render.NewHeadless(render.NewChannelKeys(t.Keys()))
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	views, unsubscribe := feed.Subscribe()
	defer unsubscribe()
	go t.Watch(ctx, views)

	errc := make(chan error, 1)
	go func() {
		errc <- a.Run(ctx)
		t.Quit()
	}()

	logger.Info("running headless, use the tray menu to start rounds")
	t.Run()
	cancel()

	err = <-errc
	logger.Info("game over", "score", cfg.Controller.Score())
	return err
}

func (c *PlayCmd) hooks(home string, logger *log.Logger) *hook.Dispatcher {
	dir := c.Hooks
	if dir == "" {
		dir = filepath.Join(home, "hooks")
	}

	manager := hook.NewManager(dir)
	if err := manager.Discover(); err != nil {
		logger.Warn("discovering hooks", "dir", dir, "err", err)
	}
	if n := len(manager.List()); n > 0 {
		logger.Info("hooks loaded", "dir", dir, "count", n)
	}

	return hook.NewDispatcher(manager, hook.NewExecutor(c.HookTimeout), logger.WithPrefix("hook"))
}

// serve starts the spectator server and returns a function that stops it.
func (c *PlayCmd) serve(feed *server.Feed, logger *log.Logger) func() {
	srv := &http.Server{
		Addr:    c.Addr,
		Handler: server.New(server.Config{Feed: feed, Logger: logger.WithPrefix("server")}),
	}

	go func() {
		logger.Info("spectator server listening", "url", viewerURL(c.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("stopping spectator server", "err", err)
		}
	}
}

func (c *PlayCmd) rng() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	if c.Seed != nil {
		seed = *c.Seed
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// viewerURL turns a listen address into a browsable URL.
func viewerURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/"
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
