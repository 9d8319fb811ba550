package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/shiptrack/internal/tracker"
)

// simulationStep is how far one step moves the simulated position.
const simulationStep = 0.05

type chip int

const (
	chipSimulate chip = iota
	chipBack
	chipForward
	chipPin
	chipIssue
)

var chipLabels = []string{
	chipSimulate: "Simulate",
	chipBack:     "◀ 5%",
	chipForward:  "5% ▶",
	chipPin:      "Pin location",
	chipIssue:    "Flag issue",
}

// renderOverrideBar renders the simulation and override chips as two
// bordered boxes side by side, with the last update line above them.
func (m Model) renderOverrideBar() string {
	fraction, simulated := m.session.Simulation()
	overrides := m.session.Overrides()

	// --- Simulation box ---
	var sim strings.Builder
	sim.WriteString(m.renderChip(chipSimulate, simulated))
	sim.WriteString(" ")
	sim.WriteString(m.renderChip(chipBack, false))
	sim.WriteString(" ")
	sim.WriteString(m.renderChip(chipForward, false))
	if simulated {
		sim.WriteString(styleActive.Render(fmt.Sprintf(" %3.0f%%", fraction*100)))
	} else {
		sim.WriteString(styleMuted.Render(" live"))
	}

	// --- Overrides box ---
	var ovr strings.Builder
	ovr.WriteString(m.renderChip(chipPin, overrides.Location.Enabled))
	ovr.WriteString(" ")
	ovr.WriteString(m.renderChip(chipIssue, overrides.Issue.Enabled))

	border := stylePanelNormal
	if m.focus == focusOverrides {
		border = stylePanelFocused
	}
	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		border.Render(sim.String()),
		border.Render(ovr.String()),
	)

	if m.tracking && !m.lastUpdate.IsZero() {
		remaining := m.opts.RefreshInterval - time.Since(m.lastUpdate)
		if remaining < 0 {
			remaining = 0
		}
		updateText := fmt.Sprintf("  Last update: %s  (refresh every %s, next in %ds)",
			m.lastUpdate.Format("15:04:05"), m.opts.RefreshInterval, int(remaining.Round(time.Second).Seconds()))
		return styleMuted.Render(updateText) + "\n" + boxes
	}

	return boxes
}

// renderChip renders a single chip with cursor highlighting.
func (m Model) renderChip(c chip, active bool) string {
	label := chipLabels[c]
	focused := m.focus == focusOverrides && m.chipCursor == int(c)
	if focused {
		if active {
			return styleChipCursor.Render("[" + label + "]")
		}
		return styleChipCursor.Render(" " + label + " ")
	}
	if active {
		return styleActive.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

// handleOverrideKeys handles key events when the override bar is focused.
func (m Model) handleOverrideKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.chipCursor > 0 {
			m.chipCursor--
		}
		return m, nil

	case "l", "right":
		if m.chipCursor < len(chipLabels)-1 {
			m.chipCursor++
		}
		return m, nil

	case " ", "enter":
		return m.activateChip(chip(m.chipCursor)), nil

	case "tab":
		if m.tracking {
			m.focus = focusTimeline
			return m, nil
		}
		m.focus = focusInput
		m.input.Focus()
		return m, nil

	case "shift+tab", "esc", "/":
		m.focus = focusInput
		m.input.Focus()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	if next, ok := m.handleSharedKeys(msg); ok {
		return next, nil
	}
	return m, nil
}

func (m Model) activateChip(c chip) Model {
	switch c {
	case chipSimulate:
		return m.toggleSimulation()
	case chipBack:
		return m.stepSimulation(-simulationStep)
	case chipForward:
		return m.stepSimulation(simulationStep)
	case chipPin:
		return m.togglePin()
	case chipIssue:
		return m.toggleIssue()
	}
	return m
}

// currentFraction returns how far through the journey the displayed
// position is, used as the starting point of a simulation.
func (m Model) currentFraction() float64 {
	at := m.state.ResolvedAt
	if at.IsZero() {
		at = time.Now()
	}
	return tracker.JourneyFraction(m.journey(), at)
}

// toggleSimulation switches between live and simulated positions.
func (m Model) toggleSimulation() Model {
	if _, on := m.session.Simulation(); on {
		m.session.ClearSimulation()
	} else {
		m.session.SetSimulation(m.currentFraction())
	}
	return m.refreshNow()
}

// stepSimulation moves the simulated position, starting a simulation if
// none is running.
func (m Model) stepSimulation(delta float64) Model {
	fraction, on := m.session.Simulation()
	if !on {
		fraction = m.currentFraction()
	}
	m.session.SetSimulation(fraction + delta)
	return m.refreshNow()
}

// togglePin toggles the forced location override.
func (m Model) togglePin() Model {
	o := m.session.Overrides()
	if o.Location.Name == "" {
		m.notice = "No pinned location configured"
		return m
	}
	o.Location.Enabled = !o.Location.Enabled
	m.session.SetOverrides(o)
	return m.refreshNow()
}

// toggleIssue toggles the forced issue override.
func (m Model) toggleIssue() Model {
	o := m.session.Overrides()
	if o.Issue.Name == "" {
		m.notice = "No issue location configured"
		return m
	}
	o.Issue.Enabled = !o.Issue.Enabled
	m.session.SetOverrides(o)
	return m.refreshNow()
}
