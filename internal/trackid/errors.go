package trackid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTrackingID indicates no code was entered
	ErrEmptyTrackingID = errors.New("please enter a tracking ID")

	// ErrUnknownTrackingID indicates the code is not on the allow-list
	ErrUnknownTrackingID = errors.New("tracking ID not found")
)

// LookupError reports a rejected tracking code
type LookupError struct {
	Code string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Code)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
