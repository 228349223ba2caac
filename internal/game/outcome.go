package game

import (
	"fmt"

	"github.com/ayusman/handrps/internal/gesture"
)

// Outcome is the result of one round from the player's side.
type Outcome int

const (
	// NoOutcome is the zero value, used while no round result is showing.
	NoOutcome Outcome = iota
	Draw
	PlayerWins
	BotWins
)

// String returns the banner text shown for the outcome.
func (o Outcome) String() string {
	switch o {
	case NoOutcome:
		return ""
	case Draw:
		return "DRAW"
	case PlayerWins:
		return "YOU WIN"
	case BotWins:
		return "BOT WINS"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by its banner text.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// beats maps each gesture to the gesture it defeats.
var beats = map[gesture.Gesture]gesture.Gesture{
	gesture.Rock:     gesture.Scissors,
	gesture.Paper:    gesture.Rock,
	gesture.Scissors: gesture.Paper,
}

// Winner decides a round between two playable gestures.
func Winner(player, bot gesture.Gesture) Outcome {
	if player == bot {
		return Draw
	}
	if beats[player] == bot {
		return PlayerWins
	}
	return BotWins
}

// Score is the running tally for the process lifetime.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Record increments the counter matching o.
func (s *Score) Record(o Outcome) {
	switch o {
	case PlayerWins:
		s.Wins++
	case BotWins:
		s.Losses++
	case Draw:
		s.Draws++
	}
}

// Rounds returns the number of completed rounds.
func (s Score) Rounds() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Score) String() string {
	return fmt.Sprintf("You: %d  Bot: %d  Draws: %d", s.Wins, s.Losses, s.Draws)
}
