package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/shiptrack/internal/trackid"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case lookupDoneMsg:
		return m.handleLookupDone(msg)

	case refreshTickMsg:
		return m.handleRefreshTick(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit starts a lookup for the entered code.
func (m Model) submit() (tea.Model, tea.Cmd) {
	code := strings.TrimSpace(m.input.Value())
	if code == "" {
		m.notice = "Please enter a tracking ID"
		return m, nil
	}

	m.seq++
	m.loading = true
	m.notice = ""
	m.rejected = nil
	m.tracking = false
	delay := m.opts.LookupDelay()
	m.logger.Debug("lookup started", "code", code, "seq", m.seq, "delay", delay)

	return m, tea.Batch(lookup(code, m.seq, delay), m.spinner.Tick)
}

func (m Model) handleLookupDone(msg lookupDoneMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.seq {
		return m, nil
	}
	m.loading = false

	state, err := m.session.Track(msg.code)
	if err != nil {
		m.rejected = err
		m.tracking = false
		if errors.Is(err, trackid.ErrEmptyTrackingID) {
			m.rejected = nil
			m.notice = "Please enter a tracking ID"
		}
		return m, nil
	}

	m.tracking = true
	m.timelineManualScroll = false
	m.applyState(state)
	return m, refreshTick(m.seq, m.opts.RefreshInterval)
}

func (m Model) handleRefreshTick(msg refreshTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || !m.tracking {
		return m, nil
	}
	m.applyState(m.session.Refresh())
	return m, refreshTick(m.seq, m.opts.RefreshInterval)
}

// refreshNow recomputes the state outside the tick schedule.
func (m Model) refreshNow() Model {
	if m.tracking {
		m.applyState(m.session.Refresh())
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKeys(msg)
	case focusOverrides:
		return m.handleOverrideKeys(msg)
	case focusTimeline:
		return m.handleTimelineKeys(msg)
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "esc":
		m.input.SetValue("")
		m.notice = ""
		return m, nil

	case "tab":
		m.focus = focusOverrides
		m.input.Blur()
		return m, nil

	case "shift+tab":
		if m.tracking {
			m.focus = focusTimeline
		} else {
			m.focus = focusOverrides
		}
		m.input.Blur()
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSharedKeys handles keys available outside the input field.
func (m Model) handleSharedKeys(msg tea.KeyMsg) (Model, bool) {
	switch msg.String() {
	case "r":
		return m.refreshNow(), true
	case "s":
		return m.toggleSimulation(), true
	case "[":
		return m.stepSimulation(-simulationStep), true
	case "]":
		return m.stepSimulation(simulationStep), true
	case "p":
		return m.togglePin(), true
	case "i":
		return m.toggleIssue(), true
	}
	return m, false
}

func (m Model) handleTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.journey().LastIndex()
	if m.timelineScroll < 0 {
		m.timelineScroll = 0
	}
	if m.timelineScroll > last {
		m.timelineScroll = last
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "/":
		m.focus = focusInput
		m.input.Focus()
		return m, nil

	case "shift+tab", "esc":
		m.focus = focusOverrides
		return m, nil

	case "j", "down":
		if m.timelineScroll < last {
			m.timelineScroll++
			m.timelineManualScroll = true
		}
		return m, nil

	case "k", "up":
		if m.timelineScroll > 0 {
			m.timelineScroll--
			m.timelineManualScroll = true
		}
		return m, nil

	case "home":
		m.timelineScroll = 0
		m.timelineManualScroll = true
		return m, nil

	case "end":
		m.timelineScroll = last
		m.timelineManualScroll = true
		return m, nil

	case "c":
		// Follow the shipment again
		m.timelineManualScroll = false
		m.timelineScroll = m.state.Index
		return m, nil
	}

	if next, ok := m.handleSharedKeys(msg); ok {
		return next, nil
	}
	return m, nil
}
