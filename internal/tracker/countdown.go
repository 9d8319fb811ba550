package tracker

import (
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// Countdown breaks the time left until arrival into weeks, days and hours.
// Callers pass the real wall-clock time here even when the position is
// simulated, so the countdown and the map can disagree.
func Countdown(arrival, now time.Time) models.TimeRemaining {
	diff := arrival.Sub(now)
	if diff <= 0 {
		return models.TimeRemaining{Arrived: true, Arrival: arrival}
	}

	const day = 24 * time.Hour
	days := int(diff / day)
	hours := int((diff % day) / time.Hour)

	return models.TimeRemaining{
		Weeks:   days / 7,
		Days:    days,
		Hours:   hours,
		Arrival: arrival,
	}
}
