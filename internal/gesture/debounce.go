package gesture

// HistorySize is the number of consecutive identical raw readings needed
// before the stable gesture changes.
const HistorySize = 6

// Debouncer holds the last HistorySize raw gestures in a ring and exposes a
// stable gesture that only moves when the whole window agrees.
//
// The zero value is ready to use with a stable gesture of None.
type Debouncer struct {
	window [HistorySize]Gesture
	next   int
	count  int
	stable Gesture
}

// Update pushes raw into the window, evicting the oldest entry once full,
// and returns the stable gesture.
func (d *Debouncer) Update(raw Gesture) Gesture {
	d.window[d.next] = raw
	d.next = (d.next + 1) % HistorySize
	if d.count < HistorySize {
		d.count++
	}

	if d.count == HistorySize && d.uniform() {
		d.stable = raw
	}
	return d.stable
}

// Stable returns the current stable gesture.
func (d *Debouncer) Stable() Gesture {
	return d.stable
}

// Reset empties the window and returns the stable gesture to None.
func (d *Debouncer) Reset() {
	*d = Debouncer{}
}

func (d *Debouncer) uniform() bool {
	for _, g := range d.window[1:] {
		if g != d.window[0] {
			return false
		}
	}
	return true
}
