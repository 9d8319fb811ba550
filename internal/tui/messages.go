package tui

import "time"

// lookupDoneMsg is sent when the simulated lookup delay has elapsed.
// seq is used for stale-result detection.
type lookupDoneMsg struct {
	seq  int
	code string
}

// refreshTickMsg is sent every refresh interval while a shipment is tracked.
// Ticks from an older lookup carry a stale seq and are dropped.
type refreshTickMsg struct {
	seq int
	at  time.Time
}
