package schedule

import (
	"math"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// RouteStop is a waypoint as written in a route file. Its offset is either an
// absolute number of days or a fraction of the whole journey.
type RouteStop struct {
	Name     string
	Lat      float64
	Lng      float64
	Status   string
	Days     *float64
	Fraction *float64
}

// TotalDays is the journey length in whole days, rounded up.
func TotalDays(departure, arrival time.Time) int {
	return int(math.Ceil(arrival.Sub(departure).Hours() / 24))
}

// Expand converts route stops into waypoints. A fraction f resolves to
// floor(TotalDays * f); the final stop always resolves to TotalDays and the
// first stop defaults to day zero.
func Expand(stops []RouteStop, departure, arrival time.Time) ([]models.Waypoint, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyRoute
	}

	total := TotalDays(departure, arrival)
	waypoints := make([]models.Waypoint, len(stops))
	last := len(stops) - 1

	for i, s := range stops {
		offset := float64(total)
		switch {
		case i == last:
		case s.Days != nil && s.Fraction != nil:
			return nil, &WaypointError{Index: i, Name: s.Name, Err: ErrStopOffset}
		case s.Days != nil:
			offset = *s.Days
		case s.Fraction != nil:
			offset = math.Floor(float64(total) * *s.Fraction)
		case i == 0:
			offset = 0
		default:
			return nil, &WaypointError{Index: i, Name: s.Name, Err: ErrStopOffset}
		}

		waypoints[i] = models.Waypoint{
			Name:      s.Name,
			Lat:       s.Lat,
			Lng:       s.Lng,
			Status:    s.Status,
			DayOffset: offset,
		}
	}
	return waypoints, nil
}

// JourneyFromRoute expands stops and builds a validated journey.
func JourneyFromRoute(stops []RouteStop, departure, arrival time.Time) (*models.Journey, error) {
	if err := checkWindow(departure, arrival); err != nil {
		return nil, err
	}
	waypoints, err := Expand(stops, departure, arrival)
	if err != nil {
		return nil, err
	}
	return NewJourney(waypoints, departure, arrival)
}
