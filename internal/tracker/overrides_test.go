package tracker

import (
	"testing"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/testutil"
)

var (
	pinned = ForcedLocation{
		Enabled: true,
		Name:    "Port of Balboa",
		Status:  "Held at Port",
		Lat:     8.95,
		Lng:     -79.57,
	}
	issue = ForcedIssue{
		Enabled: true,
		Name:    "Coral Sea",
		Status:  "Delayed",
		Lat:     -18.5,
		Lng:     155.2,
	}
)

func TestForcedLocation(t *testing.T) {
	j := twoWeekJourney()
	base := Resolve(j.Waypoints, departure.Add(8*day))
	got := pinned.Apply(base, j)

	testutil.AssertEqual(t, got.Point(), models.Point{Lat: 8.95, Lng: -79.57})
	testutil.AssertEqual(t, got.Name, "Port of Balboa")
	testutil.AssertEqual(t, got.Status, "Held at Port")
	testutil.AssertEqual(t, got.Index, base.Index)
	testutil.AssertEqual(t, got.Progress, base.Progress)
	testutil.AssertFalse(t, got.Issue)
}

func TestForcedIssue_AlwaysLastIndex(t *testing.T) {
	j := twoWeekJourney()
	chain := Overrides{Issue: issue}.Chain()

	for now := departure.Add(-2 * day); now.Before(j.Arrival.Add(2 * day)); now = now.Add(13 * time.Hour) {
		got := ApplyAll(Resolve(j.Waypoints, now), j, chain)

		testutil.AssertEqual(t, got.Index, j.LastIndex())
		testutil.AssertEqual(t, got.Point(), models.Point{Lat: -18.5, Lng: 155.2})
		testutil.AssertTrue(t, got.Issue)
		testutil.AssertEqual(t, got.Badge(), models.BadgeIssue)
	}
}

func TestOverrides_IssueWinsOverLocation(t *testing.T) {
	j := twoWeekJourney()
	o := Overrides{Location: pinned, Issue: issue}

	got := ApplyAll(Resolve(j.Waypoints, departure.Add(3*day)), j, o.Chain())

	testutil.AssertEqual(t, got.Name, "Coral Sea")
	testutil.AssertEqual(t, got.Index, j.LastIndex())
}

func TestOverrides_Disabled(t *testing.T) {
	j := twoWeekJourney()
	base := Resolve(j.Waypoints, departure.Add(3*day))

	o := Overrides{}
	testutil.AssertFalse(t, o.Any())
	testutil.AssertEqual(t, ApplyAll(base, j, o.Chain()), base)

	o.Location = pinned
	testutil.AssertTrue(t, o.Any())
}
