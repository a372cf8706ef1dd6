package service

import (
	"fmt"
	"sort"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
	"github.com/parameshwar777/compass-pal-backend-go/internal/spatial"
)

// PlaceService reports a user's frequent places, derived on demand from the
// raw sample history
type PlaceService struct {
	sampleRepo *repository.SampleRepository
	queryLimit int
}

// NewPlaceService creates a new place service
func NewPlaceService(sampleRepo *repository.SampleRepository, queryLimit int) *PlaceService {
	return &PlaceService{
		sampleRepo: sampleRepo,
		queryLimit: queryLimit,
	}
}

// FrequentPlaces clusters the user's samples by coordinate proximity and
// reports them most visited first, with the distance from the latest fix
func (s *PlaceService) FrequentPlaces(userID string) ([]models.FrequentPlace, error) {
	samples, err := s.sampleRepo.ListByUser(userID, s.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}

	clusters := prediction.ClusterByProximity(samples, prediction.DefaultProximityTolerance)

	latest, err := s.sampleRepo.LatestByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest sample: %w", err)
	}

	return s.toPlaces(clusters, latest), nil
}

// LabeledPlaces aggregates the user's named places, most visited first
func (s *PlaceService) LabeledPlaces(userID string) ([]models.FrequentPlace, error) {
	samples, err := s.sampleRepo.ListByUser(userID, s.queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}

	byLabel := prediction.ClusterByLabel(samples)
	clusters := make([]prediction.PlaceCluster, 0, len(byLabel))
	for _, c := range byLabel {
		clusters = append(clusters, c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].SampleCount != clusters[j].SampleCount {
			return clusters[i].SampleCount > clusters[j].SampleCount
		}
		return clusters[i].Label < clusters[j].Label
	})

	latest, err := s.sampleRepo.LatestByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest sample: %w", err)
	}

	return s.toPlaces(clusters, latest), nil
}

func (s *PlaceService) toPlaces(clusters []prediction.PlaceCluster, latest *models.LocationSample) []models.FrequentPlace {
	places := make([]models.FrequentPlace, 0, len(clusters))
	for _, c := range clusters {
		place := models.FrequentPlace{
			Label:       c.Label,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			SampleCount: c.SampleCount,
		}
		if latest != nil {
			d := spatial.HaversineDistance(latest.Latitude, latest.Longitude, c.Latitude, c.Longitude)
			place.DistanceMeters = &d
		}
		places = append(places, place)
	}
	return places
}
