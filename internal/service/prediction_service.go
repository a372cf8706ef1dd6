package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
)

// PredictionService runs the prediction engine over a user's history and
// records each result
type PredictionService struct {
	sampleRepo     *repository.SampleRepository
	predictionRepo *repository.PredictionRepository
	queryLimit     int
}

// NewPredictionService creates a new prediction service
func NewPredictionService(sampleRepo *repository.SampleRepository, predictionRepo *repository.PredictionRepository, queryLimit int) *PredictionService {
	return &PredictionService{
		sampleRepo:     sampleRepo,
		predictionRepo: predictionRepo,
		queryLimit:     queryLimit,
	}
}

// PredictNext computes one next-location estimate. Hour and day default to
// the current wall clock. The result is persisted best-effort: a failed
// write is logged and the computed prediction is still returned.
func (s *PredictionService) PredictNext(userID string, req models.PredictRequest) (*models.PredictResponse, error) {
	samples, err := s.sampleRepo.ListByUser(userID, s.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}

	now := time.Now()
	in := prediction.Input{
		Hour:         now.Hour(),
		Day:          int(now.Weekday()),
		CurrentLabel: req.CurrentLabel,
	}
	if req.Hour != nil {
		in.Hour = *req.Hour
	}
	if req.Day != nil {
		in.Day = *req.Day
	}

	result, err := prediction.Predict(samples, in)
	if err != nil {
		return nil, err
	}

	record := &models.Prediction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Latitude:     result.Latitude,
		Longitude:    result.Longitude,
		Confidence:   result.Confidence,
		Label:        result.Label,
		BasedOn:      result.BasedOn,
		PredictedFor: now.Add(time.Hour),
		CreatedAt:    now,
	}
	if err := s.predictionRepo.Insert(record); err != nil {
		// Best-effort persistence: the caller still gets the prediction
		log.Printf("Failed to save prediction for user %s: %v", userID, err)
	}

	labeled := 0
	for _, sample := range samples {
		if sample.HasLabel() {
			labeled++
		}
	}

	labels := prediction.LabelSet(samples)
	if labels == nil {
		labels = []string{}
	}

	transitions := make([]models.TransitionView, 0, len(result.Alternatives))
	for _, alt := range result.Alternatives {
		transitions = append(transitions, models.TransitionView{
			Label:  alt.Label,
			Count:  alt.Count,
			Coords: alt.Coords,
		})
	}

	return &models.PredictResponse{
		Prediction: models.PredictionView{
			Latitude:   result.Latitude,
			Longitude:  result.Longitude,
			Confidence: result.Confidence,
			Label:      result.Label,
			BasedOn:    result.BasedOn,
		},
		TotalDataPoints:   len(samples),
		LabeledDataPoints: labeled,
		AvailableLabels:   labels,
		Transitions:       transitions,
	}, nil
}

// ListPredictions retrieves the user's prediction history, most recent first
func (s *PredictionService) ListPredictions(userID string, limit int) ([]models.Prediction, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	predictions, err := s.predictionRepo.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

// DeletePrediction removes one of the user's prediction records
func (s *PredictionService) DeletePrediction(userID, id string) (bool, error) {
	return s.predictionRepo.Delete(userID, id)
}
