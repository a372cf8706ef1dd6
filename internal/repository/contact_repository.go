package repository

import (
	"database/sql"
	"fmt"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// ContactRepository handles database operations for emergency contacts
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Insert registers a new emergency contact
func (r *ContactRepository) Insert(c *models.EmergencyContact) error {
	query := `INSERT INTO emergency_contacts
		(id, user_id, name, phone, email, relationship, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	email := sql.NullString{String: c.Email, Valid: c.Email != ""}
	relationship := sql.NullString{String: c.Relationship, Valid: c.Relationship != ""}
	_, err := r.db.Exec(query, c.ID, c.UserID, c.Name, c.Phone, email, relationship, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's emergency contacts
func (r *ContactRepository) ListByUser(userID string) ([]models.EmergencyContact, error) {
	query := `SELECT id, user_id, name, phone, email, relationship, created_at
		FROM emergency_contacts
		WHERE user_id = ?
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.EmergencyContact
	for rows.Next() {
		var c models.EmergencyContact
		var email, relationship sql.NullString
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &email, &relationship, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		c.Email = email.String
		c.Relationship = relationship.String
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// Delete removes a contact owned by the user
func (r *ContactRepository) Delete(userID, id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM emergency_contacts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}
