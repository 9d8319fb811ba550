package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Header    func(format string, a ...interface{}) string
	Label     func(format string, a ...interface{}) string
	Value     func(format string, a ...interface{}) string
	Active    func(format string, a ...interface{}) string
	Completed func(format string, a ...interface{}) string
	Issue     func(format string, a ...interface{}) string
	Current   func(format string, a ...interface{}) string
	Time      func(format string, a ...interface{}) string
	Muted     func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Header:    noColor,
			Label:     noColor,
			Value:     noColor,
			Active:    noColor,
			Completed: noColor,
			Issue:     noColor,
			Current:   noColor,
			Time:      noColor,
			Muted:     noColor,
		}
	}

	return &Colors{
		Header:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Label:     color.New(color.FgHiBlack).SprintfFunc(),
		Value:     color.New(color.FgWhite).SprintfFunc(),
		Active:    color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Completed: color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Issue:     color.New(color.FgRed, color.Bold).SprintfFunc(),
		Current:   color.New(color.FgRed).SprintfFunc(),
		Time:      color.New(color.FgYellow).SprintfFunc(),
		Muted:     color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatBadge formats a status label in the color of its badge class
func (c *Colors) FormatBadge(status string, badge models.Badge) string {
	label := "[" + status + "]"
	switch badge {
	case models.BadgeCompleted:
		return c.Completed("%s", label)
	case models.BadgeIssue:
		return c.Issue("%s", label)
	default:
		return c.Active("%s", label)
	}
}

// FormatStage colors text by timeline stage
func (c *Colors) FormatStage(stage models.Stage, text string) string {
	switch stage {
	case models.StageCompleted:
		return c.Completed("%s", text)
	case models.StageActive:
		return c.Current("%s", text)
	default:
		return text
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
