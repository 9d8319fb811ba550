package tracker

import (
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/schedule"
	"github.com/mobil-koeln/shiptrack/internal/testutil"
)

const day = 24 * time.Hour

var departure = testutil.Date(2025, time.October, 1, 12)

// twoWeekJourney is a 14 day route with stops at days 0, 2, 4, 7, 10, 12, 14.
func twoWeekJourney() *models.Journey {
	wps := []models.Waypoint{
		{Name: "Miami", Lat: 0, Lng: 0, Status: models.StatusOrigin, DayOffset: 0},
		{Name: "Port Everglades", Lat: 10, Lng: -10, Status: models.StatusInTransit, DayOffset: 2},
		{Name: "Caribbean Sea", Lat: 20, Lng: -40, Status: models.StatusInTransit, DayOffset: 4},
		{Name: "Panama Canal", Lat: 30, Lng: -60, Status: models.StatusCanalTransit, DayOffset: 7},
		{Name: "Pacific Ocean", Lat: 60, Lng: -90, Status: models.StatusInTransit, DayOffset: 10},
		{Name: "Hawaii", Lat: 21, Lng: -157, Status: models.StatusInTransit, DayOffset: 12},
		{Name: "Sydney", Lat: -33, Lng: 151, Status: models.StatusDestination, DayOffset: 14},
	}
	j, err := schedule.NewJourney(wps, departure, departure.Add(14*day))
	if err != nil {
		panic(err)
	}
	return j
}
