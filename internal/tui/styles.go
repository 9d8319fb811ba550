package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// Colors matching output/colors.go
var (
	colorCyan   = lipgloss.Color("6")  // Cyan - active status, upcoming route
	colorYellow = lipgloss.Color("3")  // Yellow - countdown, loading
	colorRed    = lipgloss.Color("1")  // Red - current position, issues
	colorGreen  = lipgloss.Color("2")  // Green - completed
	colorWhite  = lipgloss.Color("15") // White - values
	colorGray   = lipgloss.Color("8")  // Gray - muted text, travelled route
)

// Text styles
var (
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleLabel     = lipgloss.NewStyle().Foreground(colorGray)
	styleCountdown = lipgloss.NewStyle().Foreground(colorYellow)
	styleCurrent   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleCompleted = lipgloss.NewStyle().Foreground(colorGreen)
	styleMuted     = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleActive    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Status badges, one per badge class
var (
	styleBadgeActive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(colorCyan).
				Bold(true).
				Padding(0, 1)

	styleBadgeCompleted = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(colorGreen).
				Bold(true).
				Padding(0, 1)

	styleBadgeIssue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(colorRed).
			Bold(true).
			Padding(0, 1)
)

// Focused chip cursor in the override bar, reverse video
var styleChipCursor = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// renderBadge renders a status label in its badge class style
func renderBadge(status string, badge models.Badge) string {
	switch badge {
	case models.BadgeCompleted:
		return styleBadgeCompleted.Render(status)
	case models.BadgeIssue:
		return styleBadgeIssue.Render(status)
	default:
		return styleBadgeActive.Render(status)
	}
}

// stageStyle returns the timeline text style for a stage
func stageStyle(stage models.Stage) lipgloss.Style {
	switch stage {
	case models.StageCompleted:
		return styleCompleted
	case models.StageActive:
		return styleCurrent
	default:
		return styleValue
	}
}
