package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/shiptrack/internal/output"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + input bar + override bar + panels + status bar
	header := renderHeader()
	inputBar := m.renderInputBar()
	overrideBar := m.renderOverrideBar()
	statusBar := m.renderStatusBar()

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(inputBar) -
		lipgloss.Height(overrideBar) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~40% left, ~60% right
	leftWidth := m.width*40/100 - 2 // subtract border
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftPanel := stylePanelNormal.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(m.renderResults(leftWidth, panelHeight-2))

	rightBorder := stylePanelNormal
	if m.focus == focusTimeline {
		rightBorder = stylePanelFocused
	}
	rightPanel := rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(m.renderRightPanel(rightWidth, panelHeight-2))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, inputBar, overrideBar, panels, statusBar)
}

// renderHeader renders the ASCII logo and brand name.
func renderHeader() string {
	logo := "" +
		"    |\\    \n" +
		"    | \\   \n" +
		"    |__\\  \n" +
		" \\_______/"

	title := "" +
		"     _    _       _                  _   \n" +
		" ___| |_ (_)_ __ | |_ _ __ __ _  ___| | __\n" +
		"/ __| '_ \\| | '_ \\| __| '__/ _` |/ __| |/ /\n" +
		"\\__ \\ | | | | |_) | |_| | | (_| | (__|   < \n" +
		"|___/_| |_|_| .__/ \\__|_|  \\__,_|\\___|_|\\_\\\n" +
		"            |_|                            "

	return lipgloss.JoinHorizontal(lipgloss.Bottom, styleLogo.Render(logo), "  ", styleLogo.Render(title))
}

// renderInputBar renders the tracking ID input at the top.
func (m Model) renderInputBar() string {
	border := stylePanelNormal
	if m.focus == focusInput {
		border = stylePanelFocused
	}

	content := styleHeader.Render("Tracking ID: ") + m.input.View()
	if m.notice != "" {
		content += "  " + styleError.Render(m.notice)
	}

	return border.Width(m.width - 2).Render(content)
}

// renderResults renders the left panel with the shipment details.
func (m Model) renderResults(width, height int) string {
	title := styleHeader.Render("SHIPMENT")

	switch {
	case m.loading:
		return title + "\n" + m.spinner.View() + styleLoading.Render(" Looking up shipment...")
	case m.rejected != nil:
		return title + "\n" + styleError.Render(" Tracking ID not found") + "\n" +
			styleMuted.Render(" "+truncate(m.rejected.Error(), width-2))
	case !m.tracking:
		return title + "\n" + styleMuted.Render(" Enter a tracking ID and press Enter")
	}

	shipment := m.session.Shipment()
	s := m.state
	valueWidth := width - 14

	lines := []string{
		title,
		field("Tracking ID", shipment.TrackingID, valueWidth),
		field("Item", shipment.Item, valueWidth),
		field("Weight", shipment.Weight(), valueWidth),
		field("Origin", shipment.Origin, valueWidth),
		field("Destination", shipment.Destination, valueWidth),
		"",
		field("Location", s.Name, valueWidth),
		styleLabel.Render(fmt.Sprintf(" %-12s", "Status")) + renderBadge(s.Status, s.Badge()),
		styleLabel.Render(fmt.Sprintf(" %-12s", "Remaining")) +
			styleCountdown.Render(truncate(s.Remaining.String(), valueWidth)),
		"",
		styleLabel.Render(" Progress    ") + output.ProgressBar(m.leg.Fraction(), max(valueWidth-5, 5)) +
			styleValue.Render(fmt.Sprintf(" %3.0f%%", m.leg.Fraction()*100)),
		field("Travelled", output.FormatKm(m.leg.TraveledKm), valueWidth),
		field("To go", output.FormatKm(m.leg.RemainingKm), valueWidth),
	}
	if m.leg.Heading != "" {
		lines = append(lines, field("Heading", m.leg.Heading, valueWidth))
	}
	if fraction, on := m.session.Simulation(); on {
		lines = append(lines, "", styleActive.Render(fmt.Sprintf(" Simulating %.0f%% of the voyage", fraction*100)))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func field(label, value string, width int) string {
	return styleLabel.Render(fmt.Sprintf(" %-12s", label)) + styleValue.Render(truncate(value, width))
}

// renderRightPanel renders the timeline and, when there is room, the route map beside it.
func (m Model) renderRightPanel(width, height int) string {
	if !m.tracking || width < 60 {
		return m.renderTimeline(width, height)
	}

	// Split: timeline on left ~50%, route map on right ~50%
	timelineWidth := width * 50 / 100
	mapWidth := width - timelineWidth - 1 // -1 for vertical separator

	timelineView := m.renderTimeline(timelineWidth, height)
	mapView := renderRouteMap(m.journey(), m.state, mapWidth, height)

	// Use lipgloss to enforce fixed-width columns for side-by-side layout.
	timelineBox := lipgloss.NewStyle().
		Width(timelineWidth).
		Height(height).
		Render(timelineView)
	mapBox := lipgloss.NewStyle().
		Width(mapWidth).
		Height(height).
		Render(mapView)

	vSep := styleMuted.Render(strings.Repeat("│\n", max(height-1, 0)) + "│")

	return lipgloss.JoinHorizontal(lipgloss.Top, timelineBox, vSep, mapBox)
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusInput:
		hints = "Enter:track  Tab:overrides  Esc:clear  Ctrl+C:quit"
	case focusOverrides:
		hints = "h/l:move  Space:toggle  s:simulate  [/]:step  p:pin  i:issue  r:refresh  Esc:input  q:quit"
	case focusTimeline:
		hints = "j/k:scroll  c:follow  s:simulate  [/]:step  Tab:input  Esc:overrides  q:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given display width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "~"
}
