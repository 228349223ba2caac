package hook

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ayusman/handrps/internal/game"
)

// Dispatcher runs the discovered hooks for each scored round, off the
// caller's goroutine.
type Dispatcher struct {
	manager  *Manager
	executor *Executor
	logger   *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. A nil logger discards output.
func NewDispatcher(manager *Manager, executor *Executor, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		manager:  manager,
		executor: executor,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Notify starts every hook that accepts the round's outcome and returns
// without waiting for them. It can be passed to game.WithRoundHandler.
func (d *Dispatcher) Notify(r game.Round) {
	event := NewRoundEvent(r)

	for _, h := range d.manager.List() {
		if !h.Accepts(event.Outcome) {
			continue
		}

		d.wg.Add(1)
		go func(h *Hook) {
			defer d.wg.Done()
			d.run(h, event)
		}(h)
	}
}

func (d *Dispatcher) run(h *Hook, event *Event) {
	logger := d.logger.With("hook", h.Manifest.Name, "round", event.RoundID)

	resp, err := d.executor.Execute(d.ctx, h, event)
	if err != nil {
		logger.Warn("hook failed", "err", err)
		return
	}
	if !resp.Success {
		logger.Warn("hook reported failure", "error", resp.Error)
		return
	}
	logger.Debug("hook done", "message", resp.Message)
}

// Wait blocks until every started hook has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close cancels running hooks and waits for them to exit.
func (d *Dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}
