// Package schedule turns a route of day-offset waypoints into a journey with
// absolute timestamps.
package schedule

import (
	"fmt"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// Build resolves each waypoint to departure + DayOffset days. The final
// waypoint is pinned to arrival regardless of its offset so rounding in the
// intermediate offsets can never move the end of the journey.
func Build(waypoints []models.Waypoint, departure, arrival time.Time) []models.ResolvedWaypoint {
	resolved := make([]models.ResolvedWaypoint, len(waypoints))
	for i, w := range waypoints {
		at := departure.Add(models.DayDuration(w.DayOffset))
		if i == len(waypoints)-1 {
			at = arrival
		}
		resolved[i] = models.ResolvedWaypoint{Waypoint: w, Time: at}
	}
	return resolved
}

// Validate checks the invariants Build relies on.
func Validate(waypoints []models.Waypoint, departure, arrival time.Time) error {
	if len(waypoints) == 0 {
		return ErrEmptyRoute
	}
	if err := checkWindow(departure, arrival); err != nil {
		return err
	}

	span := arrival.Sub(departure)
	prev := 0.0
	// The last offset is ignored: its time is pinned to arrival.
	for i, w := range waypoints[:len(waypoints)-1] {
		switch {
		case w.DayOffset < 0:
			return &WaypointError{Index: i, Name: w.Name, Err: ErrNegativeOffset}
		case w.DayOffset < prev:
			return &WaypointError{Index: i, Name: w.Name, Err: ErrOffsetsNotMonotonic}
		case models.DayDuration(w.DayOffset) > span:
			return &WaypointError{Index: i, Name: w.Name, Err: ErrOffsetOutOfRange}
		}
		prev = w.DayOffset
	}
	return nil
}

// NewJourney validates the waypoints and builds the journey.
func NewJourney(waypoints []models.Waypoint, departure, arrival time.Time) (*models.Journey, error) {
	if err := Validate(waypoints, departure, arrival); err != nil {
		return nil, err
	}
	return &models.Journey{
		Departure: departure,
		Arrival:   arrival,
		Waypoints: Build(waypoints, departure, arrival),
	}, nil
}

func checkWindow(departure, arrival time.Time) error {
	if !arrival.After(departure) {
		return fmt.Errorf("%w (departure %s, arrival %s)", ErrArrivalNotAfterDeparture,
			departure.Format(time.RFC3339), arrival.Format(time.RFC3339))
	}
	return nil
}
