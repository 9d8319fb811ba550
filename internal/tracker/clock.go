package tracker

import (
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// SimulatedClock places "now" at a fraction of the way through a journey.
type SimulatedClock struct {
	Journey  *models.Journey
	Fraction float64
}

func (c SimulatedClock) Now() time.Time {
	f := c.Fraction
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return c.Journey.Departure.Add(time.Duration(f * float64(c.Journey.Duration())))
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// JourneyFraction returns how far t is through j, clamped to [0, 1].
func JourneyFraction(j *models.Journey, t time.Time) float64 {
	d := j.Duration()
	if d <= 0 {
		return 1
	}
	f := float64(t.Sub(j.Departure)) / float64(d)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
