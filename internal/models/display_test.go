package models

import (
	"testing"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/testutil"
)

var testArrival = time.Date(2025, 11, 13, 12, 0, 0, 0, time.UTC)

func TestTimeRemaining_String(t *testing.T) {
	tests := []struct {
		name string
		r    TimeRemaining
		want string
	}{
		{"weeks and days", TimeRemaining{Weeks: 2, Days: 15, Hours: 3}, "2 weeks, 1 day"},
		{"one week zero days", TimeRemaining{Weeks: 1, Days: 7}, "1 week, 0 days"},
		{"days and hours", TimeRemaining{Days: 3, Hours: 1}, "3 days, 1 hour"},
		{"one day", TimeRemaining{Days: 1, Hours: 5}, "1 day, 5 hours"},
		{"hours only", TimeRemaining{Hours: 7}, "7 hours"},
		{"one hour", TimeRemaining{Hours: 1}, "1 hour"},
		{"under an hour", TimeRemaining{}, "0 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.r.Arrival = testArrival
			testutil.AssertEqual(t, tt.r.Text(), tt.want)
			testutil.AssertEqual(t, tt.r.String(), tt.want+" (Nov 13, 2025, 12:00 PM)")
		})
	}
}

func TestTimeRemaining_Arrived(t *testing.T) {
	r := TimeRemaining{Arrived: true, Arrival: testArrival}

	testutil.AssertEqual(t, r.Text(), "Arrived")
	testutil.AssertEqual(t, r.String(), "Arrived on Nov 13, 2025, 12:00 PM")
}

func TestDisplayState_Badge(t *testing.T) {
	testutil.AssertEqual(t, DisplayState{Status: StatusInTransit}.Badge(), BadgeActive)
	testutil.AssertEqual(t, DisplayState{Status: StatusOrigin}.Badge(), BadgeActive)
	testutil.AssertEqual(t, DisplayState{Status: StatusDestination}.Badge(), BadgeCompleted)
	testutil.AssertEqual(t, DisplayState{Status: StatusDestination, Issue: true}.Badge(), BadgeIssue)
}

func TestShipment_Weight(t *testing.T) {
	testutil.AssertEqual(t, Shipment{WeightKg: 750}.Weight(), "750 kg")
	testutil.AssertEqual(t, Shipment{WeightKg: 12.5}.Weight(), "12.5 kg")
}
