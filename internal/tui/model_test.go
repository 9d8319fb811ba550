package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/shiptrack/internal/testutil"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
)

func TestNew(t *testing.T) {
	m := newTestModel(tracker.Overrides{})

	testutil.AssertTrue(t, m.session != nil)
	testutil.AssertEqual(t, m.focus, focusInput)
	testutil.AssertFalse(t, m.tracking)
	testutil.AssertFalse(t, m.loading)
	testutil.AssertEqual(t, m.seq, 0)
}

func TestNew_InitialID(t *testing.T) {
	m := New(newTestModel(tracker.Overrides{}).session, Options{InitialID: "455-666-8867"})

	testutil.AssertEqual(t, m.input.Value(), "455-666-8867")
	testutil.AssertEqual(t, m.opts.RefreshInterval, 5*time.Second)
	testutil.AssertFalse(t, m.loading) // never submitted automatically
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	testutil.AssertTrue(t, m.Init() != nil)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(tracker.Overrides{})

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = newModel.(Model)

	testutil.AssertEqual(t, m.width, 100)
	testutil.AssertEqual(t, m.height, 40)
}

func TestRandomLookupDelay(t *testing.T) {
	for range 100 {
		d := randomLookupDelay()
		testutil.AssertTrue(t, d >= time.Second)
		testutil.AssertTrue(t, d < 4*time.Second)
	}
}

func TestSubmit_EmptyCode(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.input.SetValue("   ")

	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertEqual(t, m.notice, "Please enter a tracking ID")
	testutil.AssertEqual(t, m.seq, 0)
	testutil.AssertFalse(t, m.loading)
}

func TestSubmit_EmptyCodeKeepsTracking(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	seq := m.seq
	m.input.SetValue("")

	newModel, _ := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, m.tracking)
	testutil.AssertEqual(t, m.seq, seq)
}

func TestSubmit_StartsLoading(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.input.SetValue("455-666-8867")

	newModel, cmd := m.Update(key("enter"))
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.loading)
	testutil.AssertEqual(t, m.seq, 1)
	testutil.AssertFalse(t, m.session.Active()) // validated only after the delay
}

func TestLookupDone_Accepted(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.input.SetValue("455-666-8867")
	next, _ := m.submit()
	m = next.(Model)

	newModel, cmd := m.Update(lookupDoneMsg{seq: m.seq, code: "455-666-8867"})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil) // first refresh tick scheduled
	testutil.AssertTrue(t, m.tracking)
	testutil.AssertFalse(t, m.loading)
	testutil.AssertNil(t, m.rejected)
	testutil.AssertEqual(t, m.state.Index, 1)
	testutil.AssertEqual(t, m.state.Name, "Hawaii")
	testutil.AssertEqual(t, m.timelineScroll, 1)
	testutil.AssertEqual(t, m.session.Shipment().TrackingID, "455-666-8867")
	testutil.AssertTrue(t, m.leg.TraveledKm > 0)
}

func TestLookupDone_Rejected(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.input.SetValue("999")
	next, _ := m.submit()
	m = next.(Model)

	newModel, cmd := m.Update(lookupDoneMsg{seq: m.seq, code: "999"})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertFalse(t, m.tracking)
	testutil.AssertError(t, m.rejected)
}

func TestLookupDone_StaleResult(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.seq = 2
	m.loading = true

	newModel, cmd := m.Update(lookupDoneMsg{seq: 1, code: "455-666-8867"})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertTrue(t, m.loading) // still waiting for seq 2
	testutil.AssertFalse(t, m.tracking)
	testutil.AssertFalse(t, m.session.Active())
}

func TestRefreshTick_Current(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m.lastUpdate = time.Time{}

	newModel, cmd := m.Update(refreshTickMsg{seq: m.seq, at: time.Now()})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertFalse(t, m.lastUpdate.IsZero())
}

func TestRefreshTick_StaleAfterNewLookup(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	oldSeq := m.seq

	m.input.SetValue("4556668867")
	next, _ := m.submit()
	m = next.(Model)

	newModel, cmd := m.Update(refreshTickMsg{seq: oldSeq, at: time.Now()})
	m = newModel.(Model)

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertTrue(t, m.loading)
}

func TestRefreshTick_StopsAfterRejectedCode(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m = tracked(m, "000-000-0000")

	testutil.AssertFalse(t, m.tracking)
	testutil.AssertError(t, m.rejected)

	_, cmd := m.Update(refreshTickMsg{seq: m.seq, at: time.Now()})
	testutil.AssertTrue(t, cmd == nil)
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(tracker.Overrides{})

	newModel, _ := m.Update(key("tab"))
	m = newModel.(Model)
	testutil.AssertEqual(t, m.focus, focusOverrides)

	// Without a shipment the timeline is skipped
	newModel, _ = m.Update(key("tab"))
	m = newModel.(Model)
	testutil.AssertEqual(t, m.focus, focusInput)

	m = tracked(m, "455-666-8867")
	for _, want := range []focusPanel{focusOverrides, focusTimeline, focusInput} {
		newModel, _ = m.Update(key("tab"))
		m = newModel.(Model)
		testutil.AssertEqual(t, m.focus, want)
	}
}

func TestOverrideKeys_ChipCursor(t *testing.T) {
	m := newTestModel(tracker.Overrides{})
	m.focus = focusOverrides

	newModel, _ := m.Update(key("h"))
	m = newModel.(Model)
	testutil.AssertEqual(t, m.chipCursor, 0)

	for range len(chipLabels) + 2 {
		newModel, _ = m.Update(key("l"))
		m = newModel.(Model)
	}
	testutil.AssertEqual(t, m.chipCursor, len(chipLabels)-1)
}

func TestToggleSimulation(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m.focus = focusOverrides

	newModel, _ := m.Update(key("s"))
	m = newModel.(Model)

	fraction, on := m.session.Simulation()
	testutil.AssertTrue(t, on)
	testutil.AssertFloatEqual(t, fraction, 0.4, 1e-9) // day 8 of 20
	testutil.AssertEqual(t, m.state.Index, 1)

	newModel, _ = m.Update(key("s"))
	m = newModel.(Model)
	_, on = m.session.Simulation()
	testutil.AssertFalse(t, on)
}

func TestStepSimulation(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m.focus = focusTimeline

	for range 5 {
		newModel, _ := m.Update(key("]"))
		m = newModel.(Model)
	}

	fraction, on := m.session.Simulation()
	testutil.AssertTrue(t, on)
	testutil.AssertFloatEqual(t, fraction, 0.65, 1e-9)
	testutil.AssertEqual(t, m.state.Index, 2) // past Hawaii at day 12
	testutil.AssertEqual(t, m.timelineScroll, 2)
}

func TestStepSimulation_Clamped(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m.session.SetSimulation(0.98)

	m = m.stepSimulation(simulationStep)

	fraction, _ := m.session.Simulation()
	testutil.AssertFloatEqual(t, fraction, 1, 1e-9)
	testutil.AssertEqual(t, m.state.Index, 3)
	testutil.AssertEqual(t, m.state.Name, "Sydney")
}

func TestTogglePin(t *testing.T) {
	m := tracked(newTestModel(testOverrides), "455-666-8867")
	m.focus = focusOverrides
	m.chipCursor = int(chipPin)

	newModel, _ := m.Update(key(" "))
	m = newModel.(Model)

	testutil.AssertTrue(t, m.session.Overrides().Location.Enabled)
	testutil.AssertEqual(t, m.state.Name, "Panama Canal")
	testutil.AssertEqual(t, m.state.Status, "Held at Port")
	testutil.AssertEqual(t, m.state.Index, 1)
}

func TestToggleIssue_WinsOverPin(t *testing.T) {
	m := tracked(newTestModel(testOverrides), "455-666-8867")
	m.focus = focusTimeline

	for _, k := range []string{"p", "i"} {
		newModel, _ := m.Update(key(k))
		m = newModel.(Model)
	}

	testutil.AssertTrue(t, m.state.Issue)
	testutil.AssertEqual(t, m.state.Name, "Coral Sea")
	testutil.AssertEqual(t, m.state.Index, 3)

	newModel, _ := m.Update(key("i"))
	m = newModel.(Model)
	testutil.AssertFalse(t, m.state.Issue)
	testutil.AssertEqual(t, m.state.Name, "Panama Canal")
}

func TestTogglePin_NotConfigured(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")

	m = m.togglePin()

	testutil.AssertFalse(t, m.session.Overrides().Location.Enabled)
	testutil.AssertEqual(t, m.notice, "No pinned location configured")
}

func TestTimelineKeys_ManualScroll(t *testing.T) {
	m := tracked(newTestModel(tracker.Overrides{}), "455-666-8867")
	m.focus = focusTimeline

	newModel, _ := m.Update(key("j"))
	m = newModel.(Model)
	testutil.AssertEqual(t, m.timelineScroll, 2)
	testutil.AssertTrue(t, m.timelineManualScroll)

	// Manual scroll survives a refresh
	newModel, _ = m.Update(refreshTickMsg{seq: m.seq, at: time.Now()})
	m = newModel.(Model)
	testutil.AssertEqual(t, m.timelineScroll, 2)

	newModel, _ = m.Update(key("c"))
	m = newModel.(Model)
	testutil.AssertFalse(t, m.timelineManualScroll)
	testutil.AssertEqual(t, m.timelineScroll, 1)
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(tracker.Overrides{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	testutil.AssertTrue(t, cmd != nil)

	m.focus = focusOverrides
	_, cmd = m.Update(key("q"))
	testutil.AssertTrue(t, cmd != nil)
}
