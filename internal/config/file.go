package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mobil-koeln/shiptrack/internal/models"
	"github.com/mobil-koeln/shiptrack/internal/schedule"
	"github.com/mobil-koeln/shiptrack/internal/tracker"
	"github.com/mobil-koeln/shiptrack/internal/trackid"
)

//go:embed default_route.yml
var defaultRoute []byte

// DefaultRoute returns the embedded Miami to Sydney route file.
func DefaultRoute() []byte {
	return defaultRoute
}

// File is the route and shipment configuration.
type File struct {
	Shipment  ShipmentConfig  `yaml:"shipment"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Route     []StopConfig    `yaml:"route" validate:"required,min=1,dive"`
	Overrides OverridesConfig `yaml:"overrides"`
}

type ShipmentConfig struct {
	TrackingIDs []string `yaml:"tracking_ids" validate:"required,min=1,dive,required"`
	Item        string   `yaml:"item" validate:"required"`
	WeightKg    float64  `yaml:"weight_kg" validate:"gt=0"`
}

type ScheduleConfig struct {
	Departure     string  `yaml:"departure"`
	DepartureHour *int    `yaml:"departure_hour" validate:"omitempty,gte=0,lte=23"`
	Arrival       string  `yaml:"arrival"`
	TransitDays   float64 `yaml:"transit_days" validate:"gte=0"`
}

type StopConfig struct {
	Name     string   `yaml:"name" validate:"required"`
	Lat      float64  `yaml:"lat" validate:"gte=-90,lte=90"`
	Lng      float64  `yaml:"lng" validate:"gte=-180,lte=180"`
	Status   string   `yaml:"status"`
	Days     *float64 `yaml:"days" validate:"omitempty,gte=0,excluded_with=Fraction"`
	Fraction *float64 `yaml:"fraction" validate:"omitempty,gte=0,lte=1"`
}

type PointConfig struct {
	Enabled bool    `yaml:"enabled"`
	Name    string  `yaml:"name" validate:"required_if=Enabled true"`
	Status  string  `yaml:"status"`
	Lat     float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `yaml:"lng" validate:"gte=-180,lte=180"`
}

type OverridesConfig struct {
	Location PointConfig `yaml:"forced_location"`
	Issue    PointConfig `yaml:"forced_issue"`
}

// defaultDepartureHour is the hour of day used when departure is "today".
const defaultDepartureHour = 12

// LoadFile reads and validates a route file. An empty path loads the
// embedded default route.
func LoadFile(path string) (*File, error) {
	data := defaultRoute
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read route file: %w", err)
		}
	}
	f, err := ParseFile(data)
	if err != nil && path != "" {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, err
}

// ParseFile decodes and validates route file contents.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse route file: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fromValidator(err)
	}
	for i, s := range f.Route {
		if i > 0 && i < len(f.Route)-1 && s.Days == nil && s.Fraction == nil {
			return nil, NewValidationError(fmt.Sprintf("Route[%d]", i), "needs days or fraction")
		}
	}
	if f.Schedule.Arrival == "" && f.Schedule.TransitDays <= 0 {
		return nil, NewValidationError("Schedule.TransitDays", "required when arrival is empty")
	}
	return &f, nil
}

// Window returns the departure and arrival instants. An empty departure is
// today at the configured hour in loc; an empty arrival is departure plus
// transit_days.
func (f *File) Window(now time.Time, loc *time.Location) (departure, arrival time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}

	if f.Schedule.Departure == "" {
		hour := defaultDepartureHour
		if f.Schedule.DepartureHour != nil {
			hour = *f.Schedule.DepartureHour
		}
		n := now.In(loc)
		departure = time.Date(n.Year(), n.Month(), n.Day(), hour, 0, 0, 0, loc)
	} else if departure, err = ParseTime(f.Schedule.Departure, loc); err != nil {
		return time.Time{}, time.Time{}, NewValidationError("Schedule.Departure", err.Error())
	}

	if f.Schedule.Arrival == "" {
		arrival = departure.Add(models.DayDuration(f.Schedule.TransitDays))
	} else if arrival, err = ParseTime(f.Schedule.Arrival, loc); err != nil {
		return time.Time{}, time.Time{}, NewValidationError("Schedule.Arrival", err.Error())
	}

	return departure, arrival, nil
}

// Stops converts the route section into schedule stops.
func (f *File) Stops() []schedule.RouteStop {
	stops := make([]schedule.RouteStop, len(f.Route))
	for i, s := range f.Route {
		status := s.Status
		if status == "" {
			status = models.StatusInTransit
		}
		stops[i] = schedule.RouteStop{
			Name:     s.Name,
			Lat:      s.Lat,
			Lng:      s.Lng,
			Status:   status,
			Days:     s.Days,
			Fraction: s.Fraction,
		}
	}
	return stops
}

// Journey expands the route between departure and arrival.
func (f *File) Journey(departure, arrival time.Time) (*models.Journey, error) {
	return schedule.JourneyFromRoute(f.Stops(), departure, arrival)
}

// ShipmentDetails returns the static shipment fields.
func (f *File) ShipmentDetails() models.Shipment {
	s := models.Shipment{
		Item:     f.Shipment.Item,
		WeightKg: f.Shipment.WeightKg,
	}
	if n := len(f.Route); n > 0 {
		s.Origin = f.Route[0].Name
		s.Destination = f.Route[n-1].Name
	}
	return s
}

// Validator returns a tracking code validator for the configured codes.
func (f *File) Validator() *trackid.Validator {
	return trackid.NewValidator(f.Shipment.TrackingIDs...)
}

// TrackerOverrides returns the configured overrides.
func (f *File) TrackerOverrides() tracker.Overrides {
	loc, issue := f.Overrides.Location, f.Overrides.Issue
	return tracker.Overrides{
		Location: tracker.ForcedLocation{
			Enabled: loc.Enabled,
			Name:    loc.Name,
			Status:  loc.Status,
			Lat:     loc.Lat,
			Lng:     loc.Lng,
		},
		Issue: tracker.ForcedIssue{
			Enabled: issue.Enabled,
			Name:    issue.Name,
			Status:  issue.Status,
			Lat:     issue.Lat,
			Lng:     issue.Lng,
		},
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime accepts RFC 3339 or a local date with optional time of day.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q, want RFC 3339 or YYYY-MM-DD[ HH:MM]", s)
}
