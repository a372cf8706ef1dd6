package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
)

// SampleService handles business logic for location samples
type SampleService struct {
	sampleRepo *repository.SampleRepository
	queryLimit int
}

// NewSampleService creates a new sample service
func NewSampleService(sampleRepo *repository.SampleRepository, queryLimit int) *SampleService {
	return &SampleService{
		sampleRepo: sampleRepo,
		queryLimit: queryLimit,
	}
}

// LogSample records one GPS fix for the user. Day-of-week and hour-of-day
// default to the capture timestamp in local time so they stay consistent
// with created_at.
func (s *SampleService) LogSample(userID string, req models.LogSampleRequest) (*models.LocationSample, error) {
	now := time.Now()

	sample := &models.LocationSample{
		ID:        uuid.NewString(),
		UserID:    userID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		DayOfWeek: int(now.Weekday()),
		HourOfDay: now.Hour(),
		Label:     req.Label,
		CreatedAt: now,
	}
	if req.DayOfWeek != nil {
		sample.DayOfWeek = *req.DayOfWeek
	}
	if req.HourOfDay != nil {
		sample.HourOfDay = *req.HourOfDay
	}

	if err := s.sampleRepo.Insert(sample); err != nil {
		return nil, fmt.Errorf("failed to log sample: %w", err)
	}
	return sample, nil
}

// ListSamples retrieves the user's history in chronological order
func (s *SampleService) ListSamples(userID string, limit int) ([]models.LocationSample, error) {
	if limit < 1 || limit > s.queryLimit {
		limit = s.queryLimit
	}

	samples, err := s.sampleRepo.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	return samples, nil
}

// DeleteSample removes one of the user's samples. Returns false when the
// sample does not exist or belongs to another user.
func (s *SampleService) DeleteSample(userID, id string) (bool, error) {
	return s.sampleRepo.Delete(userID, id)
}

// Stats summarizes the user's logged history
func (s *SampleService) Stats(userID string) (*models.SampleStats, error) {
	samples, err := s.sampleRepo.ListByUser(userID, s.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
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

	return &models.SampleStats{
		TotalDataPoints:   len(samples),
		LabeledDataPoints: labeled,
		AvailableLabels:   labels,
	}, nil
}
