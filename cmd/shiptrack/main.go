package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/shiptrack/internal/config"
	"github.com/mobil-koeln/shiptrack/internal/geo"
	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/output"
	"github.com/mobil-koeln/shiptrack/internal/trackid"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
	"github.com/mobil-koeln/shiptrack/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shiptrack",
	Short: "Track a simulated shipment from Miami to Sydney",
	Long: `shiptrack follows a shipment along a fixed sea route and shows where
it should be right now: current location, status, time to arrival and
the journey timeline.

Features:
  - Interactive full-screen tracker with route map
  - One-shot and watch mode status output
  - Simulated positions and forced location/issue overrides
  - Custom routes from a YAML file
  - JSON output for scripting
  - Optional Prometheus metrics

Quick Start:
  1. Launch TUI:               shiptrack (or shiptrack tui)
  2. Track from the shell:     shiptrack track 455-666-8867
  3. Keep it refreshing:       shiptrack track 455-666-8867 --watch
  4. Show the route schedule:  shiptrack route`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagConfig        string
	flagSimulate      float64
	flagAt            string
	flagDeparture     string
	flagArrival       string
	flagForceIssue    bool
	flagForceLocation bool
	flagColor         string
	flagJSON          bool
	flagMetricsAddr   string
	flagLogFile       string
	flagVerbose       bool
)

// TUI flags
var (
	flagID  string
	flagURL string
)

// Track flags
var flagWatch bool

func init() {
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(tuiCmd)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Route file (YAML); defaults to the built-in route")
	pf.Float64Var(&flagSimulate, "simulate", 0, "Show the position at this fraction of the journey (0-1)")
	pf.StringVar(&flagAt, "at", "", "Show the position at a fixed time (YYYY-MM-DD[ HH:MM] or RFC 3339)")
	pf.StringVar(&flagDeparture, "departure", "", "Override the departure time")
	pf.StringVar(&flagArrival, "arrival", "", "Override the arrival time")
	pf.BoolVar(&flagForceIssue, "force-issue", false, "Move the shipment to the configured issue location")
	pf.BoolVar(&flagForceLocation, "force-location", false, "Pin the shipment to the configured location")
	pf.StringVar(&flagColor, "color", "", "Color output: auto, always, never (default auto)")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	pf.StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug diagnostics")

	// TUI flags, also accepted by the root command
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&flagID, "id", "", "Pre-fill the tracking ID")
		c.Flags().StringVar(&flagURL, "url", "", "Pre-fill the tracking ID from a link with ?id=")
	}

	// Track-specific flags
	trackCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 5 seconds")
}

var trackCmd = &cobra.Command{
	Use:   "track <tracking_id|url>",
	Short: "Show where a shipment is now",
	Long: `Look up a shipment by tracking ID and print its current status.

A tracking link such as https://example.com/?id=455-666-8867 is accepted
in place of the ID.

Watch Mode:
  --watch, -w            Refresh every 5 seconds (full-screen mode)

Examples:
  shiptrack track 455-666-8867
  shiptrack track 4556668867 --json
  shiptrack track 455-666-8867 --simulate 0.5
  shiptrack track 455-666-8867 --at "2025-10-20 08:00"
  shiptrack track 455-666-8867 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Show the route schedule",
	Long: `Show every waypoint with its day offset and resolved time.

Examples:
  shiptrack route
  shiptrack route --departure 2025-10-01 --json
  shiptrack route --config my-route.yml`,
	Args: cobra.NoArgs,
	RunE: runRoute,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for tracking the shipment.

Keyboard:
  Enter          Look up the entered tracking ID
  Tab            Cycle focus between input, overrides and timeline
  s              Toggle simulation
  [ / ]          Step the simulated position back / forward by 5%
  p              Pin the configured location
  i              Flag the configured issue
  r              Refresh now
  j/k or arrows  Scroll the timeline
  q              Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// trackResult is the JSON shape of a tracked shipment.
type trackResult struct {
	Shipment  models.Shipment     `json:"shipment"`
	State     models.DisplayState `json:"state"`
	Distance  geo.Leg             `json:"distance"`
	Simulated bool                `json:"simulated,omitempty"`
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	logger, closeLog, err := tuiLogger(env)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := setup(cmd, env, logger)
	if err != nil {
		return err
	}
	defer a.close()

	model := tui.New(a.session, tui.Options{
		RefreshInterval: a.interval,
		InitialID:       initialID(),
		Logger:          logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// initialID returns the tracking ID to pre-fill, from --id or --url.
func initialID() string {
	if flagID != "" {
		return flagID
	}
	if id, ok := trackid.FromURL(flagURL); ok {
		return id
	}
	return ""
}

func runTrack(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	logger, closeLog, err := commandLogger(env)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := setup(cmd, env, logger)
	if err != nil {
		return err
	}
	defer a.close()

	code := args[0]
	if id, ok := trackid.FromURL(code); ok {
		code = id
	}

	state, err := a.session.Track(code)
	if err != nil {
		return err
	}

	// Watch mode
	if flagWatch {
		return runWatch(a)
	}

	// JSON output
	if flagJSON {
		_, simulated := a.session.Simulation()
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trackResult{
			Shipment:  a.session.Shipment(),
			State:     state,
			Distance:  geo.Measure(a.journey, state),
			Simulated: simulated,
		})
	}

	// Text output with colors
	renderTracked(os.Stdout, a, state)
	return nil
}

// renderTracked writes the status block followed by the timeline.
func renderTracked(w io.Writer, a *app, state models.DisplayState) {
	leg := geo.Measure(a.journey, state)
	_, simulated := a.session.Simulation()
	output.RenderStatus(w, a.session.Shipment(), state, output.StatusOptions{
		Colors:    a.colors,
		Leg:       &leg,
		Simulated: simulated,
	})
	_, _ = fmt.Fprintln(w)
	output.RenderTimeline(w, a.journey, state.Index, a.colors)
}

// runWatch redraws the tracked shipment every refresh interval until interrupted.
func runWatch(a *app) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := output.SetupSignalHandler()
	go func() {
		<-sigChan
		cancel()
	}()

	// Hide cursor during watch mode
	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	draw := func(at time.Time) {
		state := a.session.Refresh()
		output.Redraw(os.Stdout, a.colors, a.interval, at, func(w io.Writer) {
			renderTracked(w, a, state)
		})
	}

	// Initial render
	draw(time.Now())
	_ = tracker.Run(ctx, a.interval, draw)

	output.ClearScreen(os.Stdout)
	fmt.Println("Watch mode ended.")
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	logger, closeLog, err := commandLogger(env)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := setup(cmd, env, logger)
	if err != nil {
		return err
	}
	defer a.close()

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a.journey)
	}

	output.RenderSchedule(os.Stdout, a.journey, a.colors)
	return nil
}
