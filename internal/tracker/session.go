package tracker

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/trackid"
)

// Observer receives session events, e.g. for metrics.
type Observer interface {
	LookupAccepted()
	LookupRejected(err error)
	Refreshed(state models.DisplayState, took time.Duration)
}

// Options configures a Session. Zero values fall back to sensible defaults.
type Options struct {
	Shipment  models.Shipment
	Validator *trackid.Validator
	Overrides Overrides
	Clock     Clock // drives the position; defaults to SystemClock
	RealClock Clock // drives the countdown; defaults to SystemClock
	Observer  Observer
	Logger    *slog.Logger
}

// Session tracks one shipment for one viewer. Each accepted or rejected
// lookup starts a new sequence so refresh loops keyed to an older sequence
// can tell they are stale.
type Session struct {
	mu sync.Mutex

	journey   *models.Journey
	shipment  models.Shipment
	validator *trackid.Validator
	overrides Overrides
	base      Clock
	clock     Clock
	realClock Clock
	simulated bool
	fraction  float64
	observer  Observer
	logger    *slog.Logger

	seq    int
	active bool
	state  models.DisplayState
}

// NewSession creates an inactive session for journey.
func NewSession(journey *models.Journey, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.RealClock == nil {
		opts.RealClock = SystemClock{}
	}
	if opts.Validator == nil {
		opts.Validator = trackid.NewValidator()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	shipment := opts.Shipment
	if len(journey.Waypoints) > 0 {
		if shipment.Origin == "" {
			shipment.Origin = journey.Origin().Name
		}
		if shipment.Destination == "" {
			shipment.Destination = journey.Destination().Name
		}
	}

	return &Session{
		journey:   journey,
		shipment:  shipment,
		validator: opts.Validator,
		overrides: opts.Overrides,
		base:      opts.Clock,
		clock:     opts.Clock,
		realClock: opts.RealClock,
		observer:  opts.Observer,
		logger:    opts.Logger,
	}
}

// Track validates code and, if accepted, starts a new tracking sequence with
// an initial refresh. A rejected code ends the current sequence.
func (s *Session) Track(code string) (models.DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if err := s.validator.Validate(code); err != nil {
		s.active = false
		s.state = models.DisplayState{}
		s.logger.Info("tracking lookup rejected", "code", code, "seq", s.seq, "error", err)
		if s.observer != nil {
			s.observer.LookupRejected(err)
		}
		return models.DisplayState{}, err
	}

	s.active = true
	s.shipment.TrackingID = strings.TrimSpace(code)
	s.logger.Info("tracking lookup accepted", "code", s.shipment.TrackingID, "seq", s.seq)
	if s.observer != nil {
		s.observer.LookupAccepted()
	}
	return s.refresh(), nil
}

// Refresh recomputes the display state and stores it.
func (s *Session) Refresh() models.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh()
}

func (s *Session) refresh() models.DisplayState {
	start := time.Now()

	state := Resolve(s.journey.Waypoints, s.clock.Now())
	state = ApplyAll(state, s.journey, s.overrides.Chain())
	state.Remaining = Countdown(s.journey.Arrival, s.realClock.Now())
	s.state = state

	took := time.Since(start)
	s.logger.Debug("refreshed",
		"seq", s.seq,
		"index", state.Index,
		"progress", state.Progress,
		"name", state.Name,
		"simulated", s.simulated,
	)
	if s.observer != nil {
		s.observer.Refreshed(state, took)
	}
	return state
}

// State returns the last computed state and whether a shipment is being tracked.
func (s *Session) State() (models.DisplayState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.active
}

// Seq returns the current lookup sequence number.
func (s *Session) Seq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Active reports whether an accepted code is being tracked.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Reset stops tracking and invalidates the current sequence.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.active = false
	s.state = models.DisplayState{}
}

// Journey returns the tracked journey.
func (s *Session) Journey() *models.Journey {
	return s.journey
}

// Shipment returns the shipment details, including the last accepted code.
func (s *Session) Shipment() models.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipment
}

// Overrides returns the current override set.
func (s *Session) Overrides() Overrides {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overrides
}

// SetOverrides replaces the override set. The next refresh picks it up.
func (s *Session) SetOverrides(o Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = o
	s.logger.Info("overrides changed",
		"location", o.Location.Enabled,
		"issue", o.Issue.Enabled,
	)
}

// SetSimulation drives the position from a fraction of the journey instead
// of the configured clock. The countdown keeps using the real clock.
func (s *Session) SetSimulation(fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	s.simulated = true
	s.fraction = fraction
	s.clock = SimulatedClock{Journey: s.journey, Fraction: fraction}
	s.logger.Info("simulation set", "fraction", fraction)
}

// ClearSimulation restores the configured position clock.
func (s *Session) ClearSimulation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulated = false
	s.fraction = 0
	s.clock = s.base
	s.logger.Info("simulation cleared")
}

// Simulation returns the simulated fraction and whether simulation is on.
func (s *Session) Simulation() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fraction, s.simulated
}
