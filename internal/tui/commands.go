package tui

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	minLookupDelay = time.Second
	maxLookupDelay = 4 * time.Second
)

// randomLookupDelay returns a delay in [1s, 4s) to mimic a remote lookup.
func randomLookupDelay() time.Duration {
	return minLookupDelay + rand.N(maxLookupDelay-minLookupDelay)
}

// lookup returns a tea.Cmd that reports the entered code after delay.
func lookup(code string, seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return lookupDoneMsg{seq: seq, code: code}
	})
}

// refreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func refreshTick(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg{seq: seq, at: t}
	})
}
