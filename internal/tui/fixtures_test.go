package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/schedule"
	"github.com/mobil-koeln/shiptrack/internal/testutil"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
)

const day = 24 * time.Hour

var departure = testutil.Date(2025, time.October, 1, 12)

// newTestModel returns a sized model over a four stop route whose clock sits
// halfway between the second and third stop.
func newTestModel(overrides tracker.Overrides) Model {
	wps := []models.Waypoint{
		{Name: "Miami", Lat: 25.77, Lng: -80.19, Status: models.StatusOrigin, DayOffset: 0},
		{Name: "Panama Canal", Lat: 9.08, Lng: -79.68, Status: models.StatusCanalTransit, DayOffset: 4},
		{Name: "Hawaii", Lat: 21.31, Lng: -157.86, Status: models.StatusInTransit, DayOffset: 12},
		{Name: "Sydney", Lat: -33.87, Lng: 151.21, Status: models.StatusDestination, DayOffset: 20},
	}
	j, err := schedule.NewJourney(wps, departure, departure.Add(20*day))
	if err != nil {
		panic(err)
	}

	now := departure.Add(8 * day)
	session := tracker.NewSession(j, tracker.Options{
		Shipment:  models.Shipment{Item: "Gold", WeightKg: 750},
		Overrides: overrides,
		Clock:     tracker.FixedClock(now),
		RealClock: tracker.FixedClock(now),
	})

	m := New(session, Options{
		RefreshInterval: 5 * time.Second,
		LookupDelay:     func() time.Duration { return 0 },
	})
	m.width = 140
	m.height = 50
	return m
}

var testOverrides = tracker.Overrides{
	Location: tracker.ForcedLocation{Name: "Panama Canal", Status: "Held at Port", Lat: 9.08, Lng: -79.68},
	Issue:    tracker.ForcedIssue{Name: "Coral Sea", Status: "Delayed", Lat: -18, Lng: 152},
}

// tracked submits code and delivers the lookup result.
func tracked(m Model, code string) Model {
	m.input.SetValue(code)
	next, _ := m.submit()
	m = next.(Model)
	next, _ = m.Update(lookupDoneMsg{seq: m.seq, code: code})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
