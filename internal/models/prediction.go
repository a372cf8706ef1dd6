package models

import "time"

// Prediction is one persisted next-location estimate. Records are append-only:
// every prediction request that succeeds inserts a new row, keeping the full
// history available for later accuracy auditing.
type Prediction struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	Confidence   float64   `json:"confidence" db:"confidence"` // 0.0-0.95
	Label        string    `json:"label" db:"label"`
	BasedOn      int       `json:"basedOnDataPoints" db:"based_on"`
	PredictedFor time.Time `json:"predictionTimestamp" db:"predicted_for"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PredictRequest is the request body for a next-location prediction.
// Hour and Day default to the caller's wall clock.
type PredictRequest struct {
	Hour         *int   `json:"hour" binding:"omitempty,min=0,max=23"`
	Day          *int   `json:"day" binding:"omitempty,min=0,max=6"`
	CurrentLabel string `json:"currentLabel"`
}

// PredictionView is the prediction part of a predict response
type PredictionView struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Confidence float64 `json:"confidence"`
	Label      string  `json:"label"`
	BasedOn    int     `json:"basedOnDataPoints"`
}

// TransitionView is one alternative next place from the transition model
type TransitionView struct {
	Label  string       `json:"label"`
	Count  int          `json:"count"`
	Coords *Coordinates `json:"coords"`
}

// PredictResponse is the full predict-next-location response shape
type PredictResponse struct {
	Prediction        PredictionView   `json:"prediction"`
	TotalDataPoints   int              `json:"totalDataPoints"`
	LabeledDataPoints int              `json:"labeledDataPoints"`
	AvailableLabels   []string         `json:"availableLabels"`
	Transitions       []TransitionView `json:"transitions"`
}
