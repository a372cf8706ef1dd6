package models

// FrequentPlace is one proximity or label cluster reported to the UI,
// with the distance from the user's last known fix when available.
type FrequentPlace struct {
	Label          string   `json:"label"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	SampleCount    int      `json:"sampleCount"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}
