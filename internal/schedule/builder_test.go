package schedule

import (
	"testing"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/testutil"
)

const day = 24 * time.Hour

var departure = testutil.Date(2025, time.October, 1, 12)

func offsets(days ...float64) []models.Waypoint {
	wps := make([]models.Waypoint, len(days))
	for i, d := range days {
		wps[i] = models.Waypoint{
			Name:      string(rune('A' + i)),
			Lat:       float64(i),
			Lng:       float64(-i),
			Status:    models.StatusInTransit,
			DayOffset: d,
		}
	}
	return wps
}

func TestBuild_AbsoluteTimes(t *testing.T) {
	arrival := departure.Add(14 * day)
	got := Build(offsets(0, 2, 4, 7, 10, 12, 14), departure, arrival)

	testutil.AssertLen(t, got, 7)
	testutil.AssertEqual(t, got[0].Time, departure)
	testutil.AssertEqual(t, got[1].Time, departure.Add(2*day))
	testutil.AssertEqual(t, got[3].Time, departure.Add(7*day))
	testutil.AssertEqual(t, got[6].Time, arrival)
	testutil.AssertEqual(t, got[3].Name, "D")
}

func TestBuild_FractionalOffset(t *testing.T) {
	arrival := departure.Add(3 * day)
	got := Build(offsets(0, 1.5, 3), departure, arrival)

	testutil.AssertEqual(t, got[1].Time, departure.Add(36*time.Hour))
}

func TestBuild_LastPinnedToArrival(t *testing.T) {
	// 13.5 days rounds up to 14; offset 14 alone would overshoot arrival
	arrival := departure.Add(13*day + 12*time.Hour)
	got := Build(offsets(0, 7, 14), departure, arrival)

	testutil.AssertEqual(t, got[2].Time, arrival)
	testutil.AssertTrue(t, got[2].Time.Before(departure.Add(14*day)))
}

func TestBuild_RebuildIsStable(t *testing.T) {
	arrival := departure.Add(13*day + 5*time.Hour)
	wps := offsets(0, 1, 6, 13)

	first := Build(wps, departure, arrival)
	second := Build(wps, departure, arrival)

	testutil.AssertLen(t, second, len(first))
	for i := range first {
		testutil.AssertEqual(t, second[i].Time, first[i].Time)
		testutil.AssertEqual(t, second[i].Waypoint, first[i].Waypoint)
	}
	testutil.AssertEqual(t, second[3].Time, arrival)
}

func TestBuild_SingleWaypoint(t *testing.T) {
	arrival := departure.Add(day)
	got := Build(offsets(0), departure, arrival)

	testutil.AssertLen(t, got, 1)
	testutil.AssertEqual(t, got[0].Time, arrival)
}

func TestValidate(t *testing.T) {
	arrival := departure.Add(14 * day)

	tests := []struct {
		name      string
		waypoints []models.Waypoint
		arrival   time.Time
		want      error
	}{
		{"empty", nil, arrival, ErrEmptyRoute},
		{"arrival equals departure", offsets(0, 1), departure, ErrArrivalNotAfterDeparture},
		{"arrival before departure", offsets(0, 1), departure.Add(-day), ErrArrivalNotAfterDeparture},
		{"negative offset", offsets(-1, 2, 14), arrival, ErrNegativeOffset},
		{"decreasing offsets", offsets(0, 5, 3, 14), arrival, ErrOffsetsNotMonotonic},
		{"intermediate past arrival", offsets(0, 15, 16), arrival, ErrOffsetOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.waypoints, departure, tt.arrival)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_LastOffsetIgnored(t *testing.T) {
	arrival := departure.Add(14 * day)
	testutil.AssertNil(t, Validate(offsets(0, 7, 30), departure, arrival))
}

func TestValidate_WaypointError(t *testing.T) {
	arrival := departure.Add(14 * day)
	err := Validate(offsets(0, 5, 3, 14), departure, arrival)

	wErr, ok := err.(*WaypointError)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, wErr.Index, 2)
	testutil.AssertContains(t, err.Error(), "waypoint 2 (C)")
}

func TestNewJourney(t *testing.T) {
	arrival := departure.Add(14 * day)
	j, err := NewJourney(offsets(0, 2, 4, 7, 10, 12, 14), departure, arrival)

	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, j.Departure, departure)
	testutil.AssertEqual(t, j.Arrival, arrival)
	testutil.AssertLen(t, j.Waypoints, 7)
	testutil.AssertEqual(t, j.Destination().Time, arrival)
}

func TestNewJourney_Invalid(t *testing.T) {
	j, err := NewJourney(offsets(0, 1), departure, departure)

	testutil.AssertErrorIs(t, err, ErrArrivalNotAfterDeparture)
	testutil.AssertTrue(t, j == nil)
}
