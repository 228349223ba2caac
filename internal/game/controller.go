// Package game runs the rock-paper-scissors round state machine.
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/ayusman/handrps/internal/gesture"
)

// Config holds round timing.
type Config struct {
	// CountdownFrom is the number the countdown starts at.
	CountdownFrom int
	// Tick is the time between countdown steps.
	Tick time.Duration
	// ResultHold is how long the result stays up before returning to the menu.
	ResultHold time.Duration
}

// DefaultConfig returns a three second countdown and a three second result.
func DefaultConfig() Config {
	return Config{
		CountdownFrom: 3,
		Tick:          time.Second,
		ResultHold:    3 * time.Second,
	}
}

// Round describes one scored round.
type Round struct {
	ID        string
	Player    gesture.Gesture
	Bot       gesture.Gesture
	Outcome   Outcome
	Score     Score
	StartedAt time.Time
	LockedAt  time.Time
}

// Controller owns the round state machine and the score.
//
// It is driven by a single frame loop and is not safe for concurrent use.
type Controller struct {
	config  Config
	clock   quartz.Clock
	rng     *rand.Rand
	logger  *log.Logger
	onRound func(Round)

	phase      Phase
	countdown  int
	lastTick   time.Time
	phaseStart time.Time
	roundStart time.Time
	roundID    string
	player     gesture.Gesture
	bot        gesture.Gesture
	outcome    Outcome
	scored     bool
	score      Score
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig sets round timing. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		if cfg.CountdownFrom > 0 {
			c.config.CountdownFrom = cfg.CountdownFrom
		}
		if cfg.Tick > 0 {
			c.config.Tick = cfg.Tick
		}
		if cfg.ResultHold > 0 {
			c.config.ResultHold = cfg.ResultHold
		}
	}
}

// WithClock sets the time source.
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithRand sets the source for the bot's choices.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithRoundHandler registers fn to be called once per scored round.
// fn runs on the frame loop and must not block.
func WithRoundHandler(fn func(Round)) Option {
	return func(c *Controller) {
		c.onRound = fn
	}
}

// NewController creates a Controller in the menu with an empty score.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		config: DefaultConfig(),
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := uint64(c.clock.Now().UnixNano())
		c.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	c.enterMenu()
	return c
}

// Press applies a key event. Only KeyStart is handled here, and only in the
// menu; it reports whether the key changed state.
func (c *Controller) Press(k Key) bool {
	if k != KeyStart || c.phase != PhaseMenu {
		return false
	}

	now := c.clock.Now()
	c.phase = PhaseCountdown
	c.countdown = c.config.CountdownFrom
	c.lastTick = now
	c.roundStart = now
	c.logger.Debug("countdown started", "from", c.countdown)
	return true
}

// Step advances the state machine by one frame using the current stable
// gesture and returns the view to render.
func (c *Controller) Step(stable gesture.Gesture) View {
	now := c.clock.Now()

	switch c.phase {
	case PhaseCountdown:
		if now.Sub(c.lastTick) >= c.config.Tick {
			if c.countdown > 0 {
				c.countdown--
			}
			c.lastTick = now

			// With no gesture at zero the countdown stays pinned and is
			// checked again on the next tick.
			if c.countdown == 0 && stable.Valid() {
				c.lockIn(stable, now)
			}
		}
	case PhaseResult:
		if now.Sub(c.phaseStart) >= c.config.ResultHold {
			c.enterMenu()
		}
	}

	if c.phase == PhaseResult {
		c.settle()
	}

	return c.view(stable)
}

// lockIn freezes the player's gesture, draws the bot's and enters the result.
func (c *Controller) lockIn(player gesture.Gesture, now time.Time) {
	c.player = player
	c.bot = gesture.Choices[c.rng.IntN(len(gesture.Choices))]
	c.roundID = uuid.NewString()
	c.phase = PhaseResult
	c.phaseStart = now
	c.scored = false
}

// settle scores the round the first time it runs in a result phase.
func (c *Controller) settle() {
	if c.scored {
		return
	}

	c.outcome = Winner(c.player, c.bot)
	c.score.Record(c.outcome)
	c.scored = true

	c.logger.Info("round scored",
		"round", c.roundID,
		"player", c.player,
		"bot", c.bot,
		"outcome", c.outcome,
		"score", c.score,
	)

	if c.onRound != nil {
		c.onRound(Round{
			ID:        c.roundID,
			Player:    c.player,
			Bot:       c.bot,
			Outcome:   c.outcome,
			Score:     c.score,
			StartedAt: c.roundStart,
			LockedAt:  c.phaseStart,
		})
	}
}

func (c *Controller) enterMenu() {
	c.phase = PhaseMenu
	c.countdown = c.config.CountdownFrom
	c.player = gesture.None
	c.bot = gesture.None
	c.outcome = NoOutcome
	c.roundID = ""
}

func (c *Controller) view(detected gesture.Gesture) View {
	v := View{
		Phase:    c.phase,
		Detected: detected,
		Score:    c.score,
	}

	switch c.phase {
	case PhaseCountdown:
		v.Countdown = c.countdown
	case PhaseResult:
		v.Player = c.player
		v.Bot = c.bot
		v.Outcome = c.outcome
		v.RoundID = c.roundID
	}
	return v
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Countdown returns the current countdown value.
func (c *Controller) Countdown() int {
	return c.countdown
}

// PlayerChoice returns the locked-in player gesture, None outside a result.
func (c *Controller) PlayerChoice() gesture.Gesture {
	return c.player
}

// BotChoice returns the bot's gesture, None outside a result.
func (c *Controller) BotChoice() gesture.Gesture {
	return c.bot
}

// Score returns the running score.
func (c *Controller) Score() Score {
	return c.score
}
