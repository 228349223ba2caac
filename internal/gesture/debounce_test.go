package gesture

import "testing"

func feed(d *Debouncer, seq ...Gesture) Gesture {
	var stable Gesture
	for _, g := range seq {
		stable = d.Update(g)
	}
	return stable
}

func TestDebouncer_SixIdenticalReadings(t *testing.T) {
	var d Debouncer

	for i := 0; i < HistorySize-1; i++ {
		if got := d.Update(Rock); got != None {
			t.Fatalf("update %d: stable = %v, want NONE before the window fills", i+1, got)
		}
	}

	if got := d.Update(Rock); got != Rock {
		t.Errorf("stable = %v after %d readings, want ROCK", got, HistorySize)
	}
}

func TestDebouncer_MixedWindowKeepsPrevious(t *testing.T) {
	t.Run("from none", func(t *testing.T) {
		var d Debouncer
		got := feed(&d, Rock, Rock, Rock, Paper, Paper, Paper)
		if got != None {
			t.Errorf("stable = %v, want NONE", got)
		}
	})

	t.Run("from an established gesture", func(t *testing.T) {
		var d Debouncer
		feed(&d, Scissors, Scissors, Scissors, Scissors, Scissors, Scissors)

		got := feed(&d, Rock, Rock, Rock, Paper, Paper, Paper)
		if got != Scissors {
			t.Errorf("stable = %v, want SCISSORS", got)
		}
	})
}

func TestDebouncer_SingleNoisyFrameDoesNotFlicker(t *testing.T) {
	var d Debouncer
	feed(&d, Paper, Paper, Paper, Paper, Paper, Paper)

	if got := d.Update(None); got != Paper {
		t.Errorf("stable = %v after one NONE, want PAPER", got)
	}

	// The run restarts, so five more readings are not enough.
	if got := feed(&d, Rock, Rock, Rock, Rock, Rock); got != Paper {
		t.Errorf("stable = %v, want PAPER", got)
	}
	if got := d.Update(Rock); got != Rock {
		t.Errorf("stable = %v, want ROCK", got)
	}
}

func TestDebouncer_SixNoneReadingsClearGesture(t *testing.T) {
	var d Debouncer
	feed(&d, Rock, Rock, Rock, Rock, Rock, Rock)

	if got := feed(&d, None, None, None, None, None); got != Rock {
		t.Errorf("stable = %v after five NONE, want ROCK", got)
	}
	if got := d.Update(None); got != None {
		t.Errorf("stable = %v after six NONE, want NONE", got)
	}
}

func TestDebouncer_OldestEvicted(t *testing.T) {
	var d Debouncer
	feed(&d, Paper, Rock, Rock, Rock, Rock, Rock)

	if got := d.Stable(); got != None {
		t.Fatalf("stable = %v, want NONE", got)
	}

	// Pushing one more Rock evicts the Paper.
	if got := d.Update(Rock); got != Rock {
		t.Errorf("stable = %v, want ROCK", got)
	}
}

func TestDebouncer_Reset(t *testing.T) {
	var d Debouncer
	feed(&d, Rock, Rock, Rock, Rock, Rock, Rock)

	d.Reset()

	if got := d.Stable(); got != None {
		t.Errorf("stable = %v after reset, want NONE", got)
	}
	if got := feed(&d, Paper, Paper, Paper, Paper, Paper); got != None {
		t.Errorf("stable = %v, want NONE until the window refills", got)
	}
}
