package models

import (
	"strings"
	"time"
)

// LocationSample represents one recorded GPS fix with an optional place label
type LocationSample struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	DayOfWeek int       `json:"dayOfWeek" db:"day_of_week"` // 0 = Sunday
	HourOfDay int       `json:"hourOfDay" db:"hour_of_day"` // 0-23, local time at capture
	Label     string    `json:"label,omitempty" db:"label"` // empty = unlabeled
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// HasLabel reports whether the sample carries a non-blank place label
func (s LocationSample) HasLabel() bool {
	return strings.TrimSpace(s.Label) != ""
}

// NormalizeLabel converts a place label to its matching key (trim + lowercase).
// Display uses the original casing; model keys always use this form.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// LogSampleRequest is the request body for logging a location fix.
// DayOfWeek and HourOfDay default to the capture timestamp's local values.
type LogSampleRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Label     string  `json:"label"`
	DayOfWeek *int    `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	HourOfDay *int    `json:"hourOfDay" binding:"omitempty,min=0,max=23"`
}

// SampleStats summarizes a user's logged history
type SampleStats struct {
	TotalDataPoints   int      `json:"totalDataPoints"`
	LabeledDataPoints int      `json:"labeledDataPoints"`
	AvailableLabels   []string `json:"availableLabels"`
}
