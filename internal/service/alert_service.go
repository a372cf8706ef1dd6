package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parameshwar777/compass-pal-backend-go/internal/alert"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
	"github.com/parameshwar777/compass-pal-backend-go/internal/spatial"
)

// nearestPlaceRadiusMeters bounds how far a labeled place can be from the
// alert coordinate and still be named in the alert text
const nearestPlaceRadiusMeters = 500.0

// SendAlertRequest is the request body for broadcasting an emergency alert.
// Contacts default to the user's registered contact list; coordinates
// default to the last known fix.
type SendAlertRequest struct {
	Contacts    []alert.Contact     `json:"contacts"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates"`
}

// AlertService broadcasts emergency alerts to a user's contacts
type AlertService struct {
	contactRepo *repository.ContactRepository
	sampleRepo  *repository.SampleRepository
	dispatcher  *alert.Dispatcher
	queryLimit  int
}

// NewAlertService creates a new alert service
func NewAlertService(contactRepo *repository.ContactRepository, sampleRepo *repository.SampleRepository, dispatcher *alert.Dispatcher, queryLimit int) *AlertService {
	return &AlertService{
		contactRepo: contactRepo,
		sampleRepo:  sampleRepo,
		dispatcher:  dispatcher,
		queryLimit:  queryLimit,
	}
}

// SendAlert broadcasts an emergency alert. Contacts without an email are
// filtered out before dispatch; delivery failures are collected per contact
// and never fail the batch.
func (s *AlertService) SendAlert(ctx context.Context, userID string, req SendAlertRequest) (*alert.Report, error) {
	contacts := req.Contacts
	if len(contacts) == 0 {
		registered, err := s.contactRepo.ListByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load contacts: %w", err)
		}
		for _, c := range registered {
			contacts = append(contacts, alert.Contact{Name: c.Name, Email: c.Email, Phone: c.Phone})
		}
	}

	coords := req.Coordinates
	if coords == nil {
		latest, err := s.sampleRepo.LatestByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest sample: %w", err)
		}
		if latest != nil {
			coords = &models.Coordinates{Latitude: latest.Latitude, Longitude: latest.Longitude}
		}
	}

	location := req.Location
	if location == "" && coords != nil {
		location = s.nearestLabeledPlace(userID, coords)
	}

	msg := alert.Message{
		UserID:      userID,
		Location:    location,
		Coordinates: coords,
		SentAt:      time.Now(),
	}
	return s.dispatcher.Dispatch(ctx, contacts, msg)
}

// nearestLabeledPlace names the closest labeled cluster within range of the
// coordinate, or returns an empty string. Lookup failures only lose the
// place name, never the alert.
func (s *AlertService) nearestLabeledPlace(userID string, coords *models.Coordinates) string {
	samples, err := s.sampleRepo.ListByUser(userID, s.queryLimit)
	if err != nil {
		return ""
	}

	best := ""
	bestDist := nearestPlaceRadiusMeters
	for _, c := range prediction.ClusterByLabel(samples) {
		d := spatial.HaversineDistance(coords.Latitude, coords.Longitude, c.Latitude, c.Longitude)
		if d <= bestDist {
			best = c.Label
			bestDist = d
		}
	}
	return best
}
