package hoverpick

import (
	"fmt"
	"io"
	"os"
)

// Stats counts tracker activity since creation or the last ResetStats.
type Stats struct {
	Frames      uint64
	Casts       uint64
	Enters      uint64
	Leaves      uint64
	Selects     uint64
	EmptyClicks uint64 // presses that arrived with nothing hovered
}

// Stats returns a copy of the tracker's counters.
func (t *Tracker) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the counters.
func (t *Tracker) ResetStats() {
	t.stats = Stats{}
}

// SetDebugMode enables logging of every hover transition and selection.
func (t *Tracker) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// SetLogOutput redirects debug output. A nil writer restores stderr.
func (t *Tracker) SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	t.logOut = w
}

// debugTransition prints one line per transition when debug mode is on.
func (t *Tracker) debugTransition(eventType EventType, ref TargetRef, distance float64) {
	if !t.debug {
		return
	}
	if eventType == EventEnter {
		_, _ = fmt.Fprintf(t.logOut, "[hoverpick] frame %d: %s %q (id %d, d=%.3f)\n",
			t.frame, eventType, ref.Name, ref.ID, distance)
		return
	}
	_, _ = fmt.Fprintf(t.logOut, "[hoverpick] frame %d: %s %q (id %d)\n",
		t.frame, eventType, ref.Name, ref.ID)
}

// DebugLog prints the counters when debug mode is on.
func (t *Tracker) DebugLog() {
	if !t.debug {
		return
	}
	s := t.stats
	_, _ = fmt.Fprintf(t.logOut,
		"[hoverpick] frames: %d | casts: %d | enters: %d | leaves: %d | selects: %d | empty clicks: %d\n",
		s.Frames, s.Casts, s.Enters, s.Leaves, s.Selects, s.EmptyClicks)
}
