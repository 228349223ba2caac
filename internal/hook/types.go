// Package hook runs user executables after each scored round.
//
// A hook lives in its own directory under the hooks directory and is
// described by a hook.json manifest. It receives the round as JSON on stdin
// and may answer with a Response on stdout.
package hook

import (
	"slices"
	"time"

	"github.com/ayusman/handrps/internal/game"
)

// ManifestFile is the manifest name looked up in each hook directory.
const ManifestFile = "hook.json"

// Manifest describes a hook.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Executable  string `json:"executable"`
	// Outcomes limits the hook to rounds with these outcomes, e.g. "YOU WIN".
	// Empty means every round.
	Outcomes []string `json:"outcomes,omitempty"`
}

// Event is the message a hook reads from stdin.
type Event struct {
	Type      string     `json:"type"`
	RoundID   string     `json:"round_id"`
	Player    string     `json:"player"`
	Bot       string     `json:"bot"`
	Outcome   string     `json:"outcome"`
	Score     game.Score `json:"score"`
	StartedAt time.Time  `json:"started_at"`
	LockedAt  time.Time  `json:"locked_at"`
}

// NewRoundEvent builds the event for a scored round.
func NewRoundEvent(r game.Round) *Event {
	return &Event{
		Type:      "round",
		RoundID:   r.ID,
		Player:    r.Player.String(),
		Bot:       r.Bot.String(),
		Outcome:   r.Outcome.String(),
		Score:     r.Score,
		StartedAt: r.StartedAt,
		LockedAt:  r.LockedAt,
	}
}

// Response is what a hook may print to stdout. Empty output counts as success.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Hook is a discovered hook with its manifest and location.
type Hook struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// Accepts reports whether the hook wants rounds with outcome.
func (h *Hook) Accepts(outcome string) bool {
	return len(h.Manifest.Outcomes) == 0 || slices.Contains(h.Manifest.Outcomes, outcome)
}
