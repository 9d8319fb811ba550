package models

import (
	"fmt"
	"time"
)

// DateLayout is the display format for checkpoint and arrival times.
const DateLayout = "Jan 2, 2006, 03:04 PM"

// DisplayState is the per-tick position, status and countdown of the shipment.
type DisplayState struct {
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Name       string        `json:"name"`
	Status     string        `json:"status"`
	Index      int           `json:"index"`
	Progress   float64       `json:"progress"`
	Issue      bool          `json:"issue,omitempty"`
	Remaining  TimeRemaining `json:"remaining"`
	ResolvedAt time.Time     `json:"resolvedAt"`
}

// Point returns the current coordinate.
func (s DisplayState) Point() Point {
	return Point{Lat: s.Lat, Lng: s.Lng}
}

// Badge returns the status badge class for the current state.
func (s DisplayState) Badge() Badge {
	if s.Issue {
		return BadgeIssue
	}
	if s.Status == StatusDestination {
		return BadgeCompleted
	}
	return BadgeActive
}

// Badge is the visual class of the status label.
type Badge string

const (
	BadgeActive    Badge = "active"
	BadgeCompleted Badge = "completed"
	BadgeIssue     Badge = "issue"
)

// TimeRemaining is the countdown to arrival broken into display units.
type TimeRemaining struct {
	Arrived bool      `json:"arrived"`
	Weeks   int       `json:"weeks"`
	Days    int       `json:"days"`
	Hours   int       `json:"hours"`
	Arrival time.Time `json:"arrival"`
}

// Text returns the countdown without the arrival date suffix.
func (r TimeRemaining) Text() string {
	if r.Arrived {
		return "Arrived"
	}
	switch {
	case r.Weeks > 0:
		return plural(r.Weeks, "week") + ", " + plural(r.Days%7, "day")
	case r.Days > 0:
		return plural(r.Days, "day") + ", " + plural(r.Hours, "hour")
	default:
		return plural(r.Hours, "hour")
	}
}

// String returns the full countdown line, e.g. "2 weeks, 1 day (Nov 13, 2025, 12:00 PM)".
func (r TimeRemaining) String() string {
	date := r.Arrival.Format(DateLayout)
	if r.Arrived {
		return "Arrived on " + date
	}
	return r.Text() + " (" + date + ")"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
