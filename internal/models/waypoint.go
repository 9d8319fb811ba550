package models

import (
	"math"
	"time"
)

// Well-known status labels. The set is open; route files may use any label.
const (
	StatusOrigin       = "Origin"
	StatusInTransit    = "In Transit"
	StatusCanalTransit = "Canal Transit"
	StatusDestination  = "Destination"
)

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Lerp returns the point a fraction f of the way from p to q.
// Interpolation is linear in lat/lng, not along a great circle.
func (p Point) Lerp(q Point, f float64) Point {
	return Point{
		Lat: p.Lat + (q.Lat-p.Lat)*f,
		Lng: p.Lng + (q.Lng-p.Lng)*f,
	}
}

// Waypoint is a named checkpoint with an offset in days from departure.
type Waypoint struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Status    string  `json:"status"`
	DayOffset float64 `json:"dayOffset"`
}

// Point returns the waypoint's coordinate.
func (w Waypoint) Point() Point {
	return Point{Lat: w.Lat, Lng: w.Lng}
}

// ResolvedWaypoint is a Waypoint pinned to an absolute instant.
type ResolvedWaypoint struct {
	Waypoint
	Time time.Time `json:"time"`
}

// DayDuration converts a (possibly fractional) number of days to a duration.
func DayDuration(days float64) time.Duration {
	return time.Duration(math.Round(days * float64(24*time.Hour)))
}
