package models

import "time"

// EmergencyContact is a person the user can broadcast an alert to.
// Alerting requires at least one contact with a non-empty email.
type EmergencyContact struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        string    `json:"email,omitempty" db:"email"`
	Relationship string    `json:"relationship,omitempty" db:"relationship"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CreateContactRequest is the request body for registering a contact
type CreateContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Relationship string `json:"relationship"`
}
