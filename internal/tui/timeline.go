package tui

import (
	"fmt"
	"strings"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// renderTimeline renders the route waypoints with route symbols, two
// lines per waypoint.
func (m Model) renderTimeline(width, height int) string {
	titleStr := styleHeader.Render("JOURNEY TIMELINE")
	if !m.tracking {
		return titleStr + "\n" + styleMuted.Render(" Track a shipment to view its route")
	}

	j := m.journey()
	last := j.LastIndex()

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := (height - 1) / 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.timelineScroll, len(j.Waypoints), maxVisible)

	for i := start; i < end; i++ {
		w := j.Waypoints[i]
		stage := models.StageOf(i, m.state.Index)
		style := stageStyle(stage)

		// Route symbol
		symbol := "├"
		if i == 0 {
			symbol = "┌"
		} else if i == last {
			symbol = "└"
		}
		if last == 0 {
			symbol = "─"
		}

		// Current indicator
		indicator := " "
		if stage == models.StageActive {
			indicator = ">"
		}

		icon := models.TimelineIcon(i, last, m.state.Index)
		name := truncate(w.Name, width-8)
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			style.Render(indicator),
			styleMuted.Render(symbol),
			icon,
			style.Render(name),
		))

		cont := "│"
		if i == last {
			cont = " "
		}
		detail := truncate(w.Status+" - "+w.Time.Format(models.DateLayout), width-6)
		b.WriteString(fmt.Sprintf("  %s    %s", styleMuted.Render(cont), styleLabel.Render(detail)))

		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
