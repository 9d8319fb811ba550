package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mobil-koeln/shiptrack/internal/geo"
	"github.com/mobil-koeln/shiptrack/internal/models"
)

// StatusOptions configures the status output
type StatusOptions struct {
	Colors    *Colors
	Leg       *geo.Leg // optional distance summary
	Simulated bool
}

var printer = message.NewPrinter(language.English)

// FormatKm formats a distance with thousands separators, e.g. "12,345 km"
func FormatKm(km float64) string {
	return printer.Sprintf("%.0f km", km)
}

// ProgressBar renders progress in [0, 1] as a fixed-width bar
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderStatus renders the tracking results block for an accepted code
func RenderStatus(w io.Writer, shipment models.Shipment, state models.DisplayState, opts StatusOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	row := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Label("%-13s", label+":"), value)
	}

	title := "Shipment " + shipment.TrackingID
	if opts.Simulated {
		title += c.Muted(" (simulated position)")
	}
	_, _ = fmt.Fprintln(w, c.Header("%s", title))
	_, _ = fmt.Fprintln(w)

	row("Tracking ID", c.Value("%s", shipment.TrackingID))
	row("Item", c.Value("%s (%s)", shipment.Item, shipment.Weight()))
	row("Origin", shipment.Origin)
	row("Destination", shipment.Destination)
	row("Location", c.Current("%s", state.Name))
	row("Status", c.FormatBadge(state.Status, state.Badge()))
	row("Arrives in", c.Time("%s", state.Remaining.String()))
	row("Segment", fmt.Sprintf("%s %3.0f%%", ProgressBar(state.Progress, 20), state.Progress*100))
	row("Position", c.Muted("%.4f, %.4f", state.Lat, state.Lng))

	if leg := opts.Leg; leg != nil {
		dist := fmt.Sprintf("%s travelled, %s remaining", FormatKm(leg.TraveledKm), FormatKm(leg.RemainingKm))
		if leg.Heading != "" {
			dist += c.Muted(" · heading %s", leg.Heading)
		}
		row("Distance", dist)
	}
}

// RenderTimeline renders the route as a vertical timeline
func RenderTimeline(w io.Writer, journey *models.Journey, index int, c *Colors) {
	if journey == nil || len(journey.Waypoints) == 0 {
		_, _ = fmt.Fprintln(w, "No route data found.")
		return
	}
	if c == nil {
		c = NewColors(ColorNever)
	}

	last := journey.LastIndex()
	for i, wp := range journey.Waypoints {
		symbol := "├"
		if i == 0 {
			symbol = "┌"
		} else if i == last {
			symbol = "└"
		}

		indicator := " "
		stage := models.StageOf(i, index)
		if stage == models.StageActive {
			indicator = c.Current(">")
		}

		_, _ = fmt.Fprintf(w, "%s %s %s %s\n",
			indicator,
			c.Muted(symbol),
			models.TimelineIcon(i, last, index),
			c.FormatStage(stage, wp.Name),
		)
		_, _ = fmt.Fprintf(w, "  %s   %s\n",
			c.Muted("│"),
			c.Muted("%s - %s", wp.Status, wp.Time.Format(models.DateLayout)),
		)
	}
}

// RenderSchedule renders the resolved schedule as a table
func RenderSchedule(w io.Writer, journey *models.Journey, c *Colors) {
	if journey == nil || len(journey.Waypoints) == 0 {
		_, _ = fmt.Fprintln(w, "No route data found.")
		return
	}
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintf(w, "%s %s → %s\n",
		c.Header("Route:"),
		journey.Departure.Format(models.DateLayout),
		journey.Arrival.Format(models.DateLayout),
	)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, c.Label("%3s  %6s  %-24s  %-20s  %18s  %s", "#", "DAY", "TIME", "STATUS", "LAT, LNG", "NAME"))

	for i, wp := range journey.Waypoints {
		_, _ = fmt.Fprintf(w, "%3d  %6s  %s  %-20s  %18s  %s\n",
			i,
			formatDay(wp.DayOffset),
			c.Time("%-24s", wp.Time.Format(models.DateLayout)),
			wp.Status,
			fmt.Sprintf("%.4f, %.4f", wp.Lat, wp.Lng),
			wp.Name,
		)
	}
}

func formatDay(d float64) string {
	if d == float64(int64(d)) {
		return fmt.Sprintf("%d", int64(d))
	}
	return fmt.Sprintf("%.2f", d)
}
