package schedule

import (
	"errors"
	"fmt"
)

// Configuration errors. A journey that fails validation is rejected at load
// time and never reaches the resolver.
var (
	ErrEmptyRoute               = errors.New("route has no waypoints")
	ErrArrivalNotAfterDeparture = errors.New("arrival must be after departure")
	ErrNegativeOffset           = errors.New("day offset is negative")
	ErrOffsetsNotMonotonic      = errors.New("day offsets must be non-decreasing")
	ErrOffsetOutOfRange         = errors.New("day offset is past arrival")
	ErrStopOffset               = errors.New("stop needs exactly one of days or fraction")
)

// WaypointError ties a validation failure to a position in the route.
type WaypointError struct {
	Index int
	Name  string
	Err   error
}

func (e *WaypointError) Error() string {
	return fmt.Sprintf("waypoint %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *WaypointError) Unwrap() error {
	return e.Err
}
