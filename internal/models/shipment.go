package models

import "fmt"

// Shipment holds the static details shown next to the tracking results.
type Shipment struct {
	TrackingID  string  `json:"trackingId"`
	Item        string  `json:"item"`
	WeightKg    float64 `json:"weightKg"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
}

// Weight returns the formatted weight, e.g. "750 kg".
func (s Shipment) Weight() string {
	if s.WeightKg == float64(int64(s.WeightKg)) {
		return fmt.Sprintf("%d kg", int64(s.WeightKg))
	}
	return fmt.Sprintf("%.1f kg", s.WeightKg)
}
