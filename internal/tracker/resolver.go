// Package tracker derives the shipment's display state from a resolved
// journey and a point in time.
package tracker

import (
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// Resolve returns the position of the shipment at now.
//
// Before the first waypoint the shipment sits at the origin; at or after the
// last it sits at the destination. In between it is interpolated linearly on
// the segment starting at the latest waypoint whose time is <= now. The name
// switches to the next waypoint once the segment is half done while the
// status stays with the anchor waypoint.
//
// The remaining-time fields are left zero; see Countdown.
func Resolve(waypoints []models.ResolvedWaypoint, now time.Time) models.DisplayState {
	if len(waypoints) == 0 {
		return models.DisplayState{ResolvedAt: now}
	}

	first := waypoints[0]
	if now.Before(first.Time) {
		return at(first, 0, 0, now)
	}

	last := len(waypoints) - 1
	if !now.Before(waypoints[last].Time) {
		return at(waypoints[last], last, 1, now)
	}

	anchor := 0
	for i, w := range waypoints {
		if now.Before(w.Time) {
			break
		}
		anchor = i
	}

	cur := waypoints[anchor]
	next := waypoints[anchor+1]
	progress := segmentProgress(cur.Time, next.Time, now)
	pos := cur.Point().Lerp(next.Point(), progress)

	name := cur.Name
	if progress >= 0.5 {
		name = next.Name
	}

	return models.DisplayState{
		Lat:        pos.Lat,
		Lng:        pos.Lng,
		Name:       name,
		Status:     cur.Status,
		Index:      anchor,
		Progress:   progress,
		ResolvedAt: now,
	}
}

func at(w models.ResolvedWaypoint, index int, progress float64, now time.Time) models.DisplayState {
	return models.DisplayState{
		Lat:        w.Lat,
		Lng:        w.Lng,
		Name:       w.Name,
		Status:     w.Status,
		Index:      index,
		Progress:   progress,
		ResolvedAt: now,
	}
}

// segmentProgress returns how far now is between from and to, clamped to [0, 1].
func segmentProgress(from, to, now time.Time) float64 {
	span := to.Sub(from)
	if span <= 0 {
		return 1
	}
	p := float64(now.Sub(from)) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
