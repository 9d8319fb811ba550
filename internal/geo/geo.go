// Package geo measures great-circle distances along a journey.
package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/mobil-koeln/shiptrack/internal/models"
)

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

// KmPerNauticalMile converts kilometres to nautical miles.
const KmPerNauticalMile = 1.852

func latLng(p models.Point) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b models.Point) float64 {
	return latLng(a).Distance(latLng(b)).Radians() * EarthRadiusKm
}

// Length returns the total length of a polyline in kilometres.
func Length(path []models.Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

// Bearing returns the initial bearing from a to b in degrees, 0 being north.
func Bearing(a, b models.Point) float64 {
	p1, p2 := latLng(a), latLng(b)
	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	dLng := p2.Lng.Radians() - p1.Lng.Radians()

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass returns the eight-wind direction for a bearing in degrees.
func Compass(bearing float64) string {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return compassPoints[int(math.Floor((b+22.5)/45))%8]
}

// Leg summarises how far along its route a shipment is.
type Leg struct {
	TraveledKm  float64 `json:"traveledKm"`
	RemainingKm float64 `json:"remainingKm"`
	Heading     string  `json:"heading,omitempty"`
}

// TotalKm returns the full route length as seen from the current position.
func (l Leg) TotalKm() float64 {
	return l.TraveledKm + l.RemainingKm
}

// Fraction returns the travelled share of the route in [0, 1].
func (l Leg) Fraction() float64 {
	total := l.TotalKm()
	if total == 0 {
		return 1
	}
	return l.TraveledKm / total
}

// Measure splits the journey at the state's index and current position and
// measures both halves. Heading points at the next waypoint, if any.
func Measure(j *models.Journey, state models.DisplayState) Leg {
	traveled, upcoming := j.SplitPath(state.Index, state.Point())
	leg := Leg{
		TraveledKm:  Length(traveled),
		RemainingKm: Length(upcoming),
	}
	if len(upcoming) > 1 && Distance(upcoming[0], upcoming[1]) > 0 {
		leg.Heading = Compass(Bearing(upcoming[0], upcoming[1]))
	}
	return leg
}
