package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/shiptrack/internal/geo"
	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
)

type focusPanel int

const (
	focusInput focusPanel = iota
	focusOverrides
	focusTimeline
)

// Options configures the TUI.
type Options struct {
	RefreshInterval time.Duration
	// InitialID pre-fills the input; it is never submitted automatically.
	InitialID string
	// LookupDelay returns the cosmetic delay before a lookup resolves.
	// Defaults to a random delay between one and four seconds.
	LookupDelay func() time.Duration
	Logger      *slog.Logger
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	session *tracker.Session
	opts    Options
	logger  *slog.Logger
	width   int
	height  int

	input   textinput.Model
	spinner spinner.Model
	focus   focusPanel

	// Lookup state. seq increments on every submitted lookup so that
	// delayed results and refresh ticks from earlier lookups are ignored.
	seq      int
	loading  bool
	notice   string
	rejected error
	tracking bool

	// Results
	state      models.DisplayState
	leg        geo.Leg
	lastUpdate time.Time

	// Override bar
	chipCursor int

	// Timeline
	timelineScroll       int
	timelineManualScroll bool
}

// New creates a new TUI model for session.
func New(session *tracker.Session, opts Options) Model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 5 * time.Second
	}
	if opts.LookupDelay == nil {
		opts.LookupDelay = randomLookupDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Enter tracking ID, e.g. 455-666-8867"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.SetValue(opts.InitialID)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styleLoading))

	return Model{
		session: session,
		opts:    opts,
		logger:  opts.Logger,
		input:   ti,
		spinner: sp,
		focus:   focusInput,
	}
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// journey returns the tracked journey.
func (m Model) journey() *models.Journey {
	return m.session.Journey()
}

// applyState stores a freshly computed state.
func (m *Model) applyState(state models.DisplayState) {
	m.state = state
	m.leg = geo.Measure(m.journey(), state)
	m.lastUpdate = time.Now()
	if !m.timelineManualScroll {
		m.timelineScroll = state.Index
	}
}
