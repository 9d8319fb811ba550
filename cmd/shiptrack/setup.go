package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/shiptrack/internal/config"
	"github.com/mobil-koeln/shiptrack/internal/metrics"
	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/output"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
)

// app is everything a command needs once configuration is resolved.
type app struct {
	env      *config.Env
	file     *config.File
	journey  *models.Journey
	session  *tracker.Session
	colors   *output.Colors
	interval time.Duration
	logger   *slog.Logger
	metrics  *http.Server
}

// newLogger returns a text logger writing to w at level, or Debug with --verbose.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// commandLogger returns the logger for one-shot commands: the log file if
// one is configured, stderr otherwise. Stderr only gets warnings unless
// --verbose is set. The returned close func is never nil.
func commandLogger(env *config.Env) (*slog.Logger, func(), error) {
	path := logFile(env)
	if path == "" {
		return newLogger(os.Stderr, slog.LevelWarn), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f, slog.LevelInfo), func() { _ = f.Close() }, nil
}

// tuiLogger returns the logger for the TUI. Without a log file diagnostics
// are discarded so they cannot corrupt the alt screen.
func tuiLogger(env *config.Env) (*slog.Logger, func(), error) {
	path := logFile(env)
	if path == "" {
		return newLogger(io.Discard, slog.LevelInfo), func() {}, nil
	}
	f, err := tea.LogToFile(path, "shiptrack")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f, slog.LevelInfo), func() { _ = f.Close() }, nil
}

func logFile(env *config.Env) string {
	if flagLogFile != "" {
		return flagLogFile
	}
	return env.LogFile
}

// setup loads configuration and builds the tracking session. Flags override
// environment settings, which override the route file.
func setup(cmd *cobra.Command, env *config.Env, logger *slog.Logger) (*app, error) {
	path := flagConfig
	if path == "" {
		path = env.ConfigPath
	}
	file, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("route loaded", "path", path, "stops", len(file.Route))

	if flagDeparture != "" {
		file.Schedule.Departure = flagDeparture
	}
	if flagArrival != "" {
		file.Schedule.Arrival = flagArrival
	}
	departure, arrival, err := file.Window(time.Now(), env.Location)
	if err != nil {
		return nil, err
	}
	journey, err := file.Journey(departure, arrival)
	if err != nil {
		return nil, fmt.Errorf("invalid route: %w", err)
	}

	overrides := file.TrackerOverrides()
	if flagForceLocation {
		if overrides.Location.Name == "" {
			return nil, config.NewValidationError("Overrides.Location", "--force-location needs forced_location in the route file")
		}
		overrides.Location.Enabled = true
	}
	if flagForceIssue {
		if overrides.Issue.Name == "" {
			return nil, config.NewValidationError("Overrides.Issue", "--force-issue needs forced_issue in the route file")
		}
		overrides.Issue.Enabled = true
	}

	var clock tracker.Clock = tracker.SystemClock{}
	if flagAt != "" {
		at, err := config.ParseTime(flagAt, env.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid --at: %w", err)
		}
		clock = tracker.FixedClock(at)
	}

	a := &app{
		env:      env,
		file:     file,
		journey:  journey,
		colors:   output.NewColors(colorMode(env)),
		interval: env.RefreshInterval,
		logger:   logger,
	}

	opts := tracker.Options{
		Shipment:  file.ShipmentDetails(),
		Validator: file.Validator(),
		Overrides: overrides,
		Clock:     clock,
		Logger:    logger,
	}

	addr := flagMetricsAddr
	if addr == "" {
		addr = env.MetricsAddr
	}
	if addr != "" {
		collector := metrics.NewCollector(a.interval, len(journey.Waypoints))
		opts.Observer = collector
		a.metrics = collector.Serve(addr, logger)
	}

	a.session = tracker.NewSession(journey, opts)

	if cmd.Flags().Changed("simulate") {
		if flagSimulate < 0 || flagSimulate > 1 {
			return nil, fmt.Errorf("--simulate must be between 0 and 1, got %g", flagSimulate)
		}
		a.session.SetSimulation(flagSimulate)
	}

	logger.Info("journey ready",
		"departure", departure,
		"arrival", arrival,
		"waypoints", len(journey.Waypoints),
		"interval", a.interval,
	)
	return a, nil
}

// close stops the metrics server, if any.
func (a *app) close() {
	if a.metrics == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.metrics.Shutdown(ctx); err != nil {
		a.logger.Warn("metrics shutdown", "error", err)
	}
}

// colorMode returns the color mode from --color, falling back to the environment.
func colorMode(env *config.Env) output.ColorMode {
	if flagColor != "" {
		return output.ParseColorMode(flagColor)
	}
	return output.ParseColorMode(env.Color)
}
