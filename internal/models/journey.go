package models

import "time"

// Journey is the fully resolved schedule from departure to arrival.
// Build it with schedule.NewJourney; a Journey is never mutated afterwards.
type Journey struct {
	Departure time.Time          `json:"departure"`
	Arrival   time.Time          `json:"arrival"`
	Waypoints []ResolvedWaypoint `json:"waypoints"`
}

// Origin returns the first waypoint.
func (j *Journey) Origin() ResolvedWaypoint {
	return j.Waypoints[0]
}

// Destination returns the last waypoint.
func (j *Journey) Destination() ResolvedWaypoint {
	return j.Waypoints[len(j.Waypoints)-1]
}

// LastIndex returns the index of the destination waypoint.
func (j *Journey) LastIndex() int {
	return len(j.Waypoints) - 1
}

// Duration returns the time between departure and arrival.
func (j *Journey) Duration() time.Duration {
	return j.Arrival.Sub(j.Departure)
}

// Points returns the waypoint coordinates in route order.
func (j *Journey) Points() []Point {
	pts := make([]Point, len(j.Waypoints))
	for i, w := range j.Waypoints {
		pts[i] = w.Point()
	}
	return pts
}

// SplitPath splits the route at the given index for drawing.
// traveled runs from the origin through waypoint index to current;
// upcoming runs from current through the remaining waypoints.
func (j *Journey) SplitPath(index int, current Point) (traveled, upcoming []Point) {
	if len(j.Waypoints) == 0 {
		return nil, nil
	}
	if index < 0 {
		index = 0
	}
	if index > j.LastIndex() {
		index = j.LastIndex()
	}

	for i := 0; i <= index; i++ {
		traveled = append(traveled, j.Waypoints[i].Point())
	}
	traveled = append(traveled, current)

	upcoming = append(upcoming, current)
	for i := index + 1; i < len(j.Waypoints); i++ {
		upcoming = append(upcoming, j.Waypoints[i].Point())
	}
	return traveled, upcoming
}

// Stage classifies a timeline entry relative to the last waypoint reached.
type Stage int

const (
	StageUpcoming Stage = iota
	StageActive
	StageCompleted
)

func (s Stage) String() string {
	switch s {
	case StageCompleted:
		return "completed"
	case StageActive:
		return "active"
	default:
		return "upcoming"
	}
}

// StageOf returns the stage of waypoint i when index is the last one reached.
func StageOf(i, index int) Stage {
	switch {
	case i < index:
		return StageCompleted
	case i == index:
		return StageActive
	default:
		return StageUpcoming
	}
}

// Timeline markers.
const (
	IconOrigin      = "🚢"
	IconDestination = "✅"
	IconCompleted   = "✓"
	IconUpcoming    = "📍"
)

// TimelineIcon returns the marker for waypoint i of a route whose last index
// is last, when index is the last waypoint reached.
func TimelineIcon(i, last, index int) string {
	switch {
	case i == 0:
		return IconOrigin
	case i == last:
		return IconDestination
	case i < index:
		return IconCompleted
	default:
		return IconUpcoming
	}
}
