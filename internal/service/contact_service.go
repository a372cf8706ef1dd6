package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
)

// ContactService handles business logic for emergency contacts
type ContactService struct {
	contactRepo *repository.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo *repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// CreateContact registers a new emergency contact for the user
func (s *ContactService) CreateContact(userID string, req models.CreateContactRequest) (*models.EmergencyContact, error) {
	contact := &models.EmergencyContact{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		CreatedAt:    time.Now(),
	}

	if err := s.contactRepo.Insert(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// ListContacts retrieves the user's emergency contacts
func (s *ContactService) ListContacts(userID string) ([]models.EmergencyContact, error) {
	contacts, err := s.contactRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// DeleteContact removes one of the user's contacts
func (s *ContactService) DeleteContact(userID, id string) (bool, error) {
	return s.contactRepo.Delete(userID, id)
}
