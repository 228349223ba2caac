package gesture

import "github.com/ayusman/handrps/internal/detector"

// Reading is the classifier output for one frame.
type Reading struct {
	Raw    Gesture
	Stable Gesture
	// Hand is the sample the reading came from, nil when no hand was seen.
	// It is passed through for the skeleton overlay.
	Hand *detector.HandLandmarks
}

// Classifier classifies per-frame samples and debounces the results.
type Classifier struct {
	debouncer Debouncer
}

// NewClassifier creates a Classifier with a stable gesture of None.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Observe classifies hand and feeds the raw gesture to the debouncer.
// A missing hand still counts as a None reading.
func (c *Classifier) Observe(hand *detector.HandLandmarks) Reading {
	raw := Classify(hand)
	return Reading{
		Raw:    raw,
		Stable: c.debouncer.Update(raw),
		Hand:   hand,
	}
}

// Stable returns the current stable gesture.
func (c *Classifier) Stable() Gesture {
	return c.debouncer.Stable()
}
