package game

import "fmt"

// Phase is the controller's state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhaseCountdown:
		return "COUNTDOWN"
	case PhaseResult:
		return "RESULT"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Key is a logical input event.
type Key int

const (
	// KeyNone means no actionable key this frame.
	KeyNone Key = iota
	// KeyStart begins a round from the menu.
	KeyStart
	// KeyQuit ends the frame loop from any phase.
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyStart:
		return "start"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}
