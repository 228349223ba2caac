package gesture

import "github.com/ayusman/handrps/internal/detector"

// finger pairs a fingertip with the joint it must rise above to count as
// extended.
type finger struct {
	tip, joint int
}

var (
	thumb  = finger{detector.ThumbTip, detector.ThumbMCP}
	index  = finger{detector.IndexTip, detector.IndexPIP}
	middle = finger{detector.MiddleTip, detector.MiddlePIP}
	ring   = finger{detector.RingTip, detector.RingPIP}
	pinky  = finger{detector.PinkyTip, detector.PinkyPIP}

	fingers = [...]finger{thumb, index, middle, ring, pinky}
)

func (f finger) extended(hand *detector.HandLandmarks) bool {
	return hand.Y(f.tip) < hand.Y(f.joint)
}

// Classify maps a single landmark sample to a raw gesture.
//
// Rules, in order: at most one extended finger is Rock, four or more is
// Paper, index and middle both extended is Scissors, anything else is None.
// A nil hand is None.
func Classify(hand *detector.HandLandmarks) Gesture {
	if hand == nil {
		return None
	}

	extended := 0
	for _, f := range fingers {
		if f.extended(hand) {
			extended++
		}
	}

	switch {
	case extended <= 1:
		return Rock
	case extended >= 4:
		return Paper
	case index.extended(hand) && middle.extended(hand):
		return Scissors
	default:
		return None
	}
}
