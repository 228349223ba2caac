// Package gesture turns hand landmarks into rock-paper-scissors gestures.
package gesture

import "fmt"

// Gesture is a classified hand pose.
type Gesture int

const (
	// None means no classifiable gesture: no hand, or an ambiguous pose.
	None Gesture = iota
	Rock
	Paper
	Scissors
)

// Choices lists the playable gestures.
var Choices = [...]Gesture{Rock, Paper, Scissors}

var names = [...]string{
	None:     "NONE",
	Rock:     "ROCK",
	Paper:    "PAPER",
	Scissors: "SCISSORS",
}

// String returns the upper-case gesture name shown on screen.
func (g Gesture) String() string {
	if g < None || g > Scissors {
		return fmt.Sprintf("Gesture(%d)", int(g))
	}
	return names[g]
}

// Valid reports whether g is a playable gesture.
func (g Gesture) Valid() bool {
	return g == Rock || g == Paper || g == Scissors
}

// MarshalText encodes the gesture by name.
func (g Gesture) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Parse returns the gesture with the given name.
func Parse(name string) (Gesture, error) {
	for g, n := range names {
		if n == name {
			return Gesture(g), nil
		}
	}
	return None, fmt.Errorf("unknown gesture %q", name)
}
