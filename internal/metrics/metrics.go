// Package metrics exposes tracking session activity to Prometheus.
package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
	"github.com/mobil-koeln/shiptrack/internal/trackid"
)

var _ tracker.Observer = (*Collector)(nil)

type Collector struct {
	reg *prometheus.Registry

	Lookups *prometheus.CounterVec // result label: accepted|unknown|empty

	Refreshes    prometheus.Counter
	TickDuration prometheus.Histogram

	WaypointIndex   prometheus.Gauge
	SegmentProgress prometheus.Gauge
	Issue           prometheus.Gauge
	HoursToArrival  prometheus.Gauge

	RefreshInterval prometheus.Gauge // seconds
	Waypoints       prometheus.Gauge
}

func NewCollector(refreshInterval time.Duration, waypoints int) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shiptrack_lookups_total",
			Help: "Tracking code lookups by result.",
		}, []string{"result"}),
		Refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiptrack_refreshes_total",
			Help: "Total display state refreshes.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shiptrack_refresh_duration_seconds",
			Help:    "Duration of display state computations.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
		WaypointIndex: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_waypoint_index",
			Help: "Index of the last waypoint reached.",
		}),
		SegmentProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_segment_progress_ratio",
			Help: "Progress through the current segment, 0 to 1.",
		}),
		Issue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_issue",
			Help: "1 if the shipment is flagged with an issue, 0 otherwise.",
		}),
		HoursToArrival: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_hours_to_arrival",
			Help: "Whole hours until the scheduled arrival, 0 once arrived.",
		}),
		RefreshInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_refresh_interval_seconds",
			Help: "Refresh interval in seconds.",
		}),
		Waypoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiptrack_route_waypoints",
			Help: "Number of waypoints on the route.",
		}),
	}

	reg.MustRegister(
		c.Lookups, c.Refreshes, c.TickDuration,
		c.WaypointIndex, c.SegmentProgress, c.Issue, c.HoursToArrival,
		c.RefreshInterval, c.Waypoints,
	)

	c.RefreshInterval.Set(refreshInterval.Seconds())
	c.Waypoints.Set(float64(waypoints))

	return c
}

// LookupAccepted counts an accepted tracking code.
func (c *Collector) LookupAccepted() {
	c.Lookups.WithLabelValues("accepted").Inc()
}

// LookupRejected counts a rejected tracking code by reason.
func (c *Collector) LookupRejected(err error) {
	result := "unknown"
	if errors.Is(err, trackid.ErrEmptyTrackingID) {
		result = "empty"
	}
	c.Lookups.WithLabelValues(result).Inc()
}

// Refreshed records one display state computation.
func (c *Collector) Refreshed(state models.DisplayState, took time.Duration) {
	c.Refreshes.Inc()
	c.TickDuration.Observe(took.Seconds())
	c.WaypointIndex.Set(float64(state.Index))
	c.SegmentProgress.Set(state.Progress)

	issue := 0.0
	if state.Issue {
		issue = 1
	}
	c.Issue.Set(issue)

	left := 0
	if !state.Remaining.Arrived {
		left = state.Remaining.Days*24 + state.Remaining.Hours
	}
	c.HoursToArrival.Set(float64(left))
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", addr)
	return srv
}
