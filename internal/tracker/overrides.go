package tracker

import "github.com/mobil-koeln/shiptrack/internal/models"

// Override post-processes a resolved state. Disabled overrides return the
// state unchanged.
type Override interface {
	Apply(state models.DisplayState, journey *models.Journey) models.DisplayState
}

// ForcedLocation pins the displayed position and label to a fixed
// checkpoint regardless of time. The reached index is left alone.
type ForcedLocation struct {
	Enabled bool
	Name    string
	Status  string
	Lat     float64
	Lng     float64
}

func (o ForcedLocation) Apply(state models.DisplayState, _ *models.Journey) models.DisplayState {
	if !o.Enabled {
		return state
	}
	state.Lat, state.Lng = o.Lat, o.Lng
	state.Name, state.Status = o.Name, o.Status
	return state
}

// ForcedIssue moves the shipment to a fixed problem location and marks the
// journey as having reached its final stage with an issue.
type ForcedIssue struct {
	Enabled bool
	Name    string
	Status  string
	Lat     float64
	Lng     float64
}

func (o ForcedIssue) Apply(state models.DisplayState, journey *models.Journey) models.DisplayState {
	if !o.Enabled {
		return state
	}
	state.Lat, state.Lng = o.Lat, o.Lng
	state.Name, state.Status = o.Name, o.Status
	state.Issue = true
	if journey != nil && len(journey.Waypoints) > 0 {
		state.Index = journey.LastIndex()
	}
	return state
}

// Overrides is the set of optional transforms applied after Resolve.
type Overrides struct {
	Location ForcedLocation
	Issue    ForcedIssue
}

// Chain returns the overrides in application order: location first, then
// issue, so an active issue wins over a pinned location.
func (o Overrides) Chain() []Override {
	return []Override{o.Location, o.Issue}
}

// Any reports whether at least one override is enabled.
func (o Overrides) Any() bool {
	return o.Location.Enabled || o.Issue.Enabled
}

// ApplyAll runs state through each override in order.
func ApplyAll(state models.DisplayState, journey *models.Journey, chain []Override) models.DisplayState {
	for _, o := range chain {
		state = o.Apply(state, journey)
	}
	return state
}
