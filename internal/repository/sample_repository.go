package repository

import (
	"database/sql"
	"fmt"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// SampleRepository handles database operations for location samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// Insert appends a new location sample. Samples are never updated.
func (r *SampleRepository) Insert(s *models.LocationSample) error {
	query := `INSERT INTO location_samples
		(id, user_id, latitude, longitude, day_of_week, hour_of_day, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	label := sql.NullString{String: s.Label, Valid: s.HasLabel()}
	_, err := r.db.Exec(query, s.ID, s.UserID, s.Latitude, s.Longitude,
		s.DayOfWeek, s.HourOfDay, label, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's samples in ascending chronological order,
// capped at limit to bound per-request compute
func (r *SampleRepository) ListByUser(userID string, limit int) ([]models.LocationSample, error) {
	query := `SELECT id, user_id, latitude, longitude, day_of_week, hour_of_day, label, created_at
		FROM location_samples
		WHERE user_id = ?
		ORDER BY created_at ASC
		LIMIT ?`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []models.LocationSample
	for rows.Next() {
		var s models.LocationSample
		var label sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &s.Latitude, &s.Longitude,
			&s.DayOfWeek, &s.HourOfDay, &label, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		s.Label = label.String
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// LatestByUser returns the most recent sample, or nil when none exist
func (r *SampleRepository) LatestByUser(userID string) (*models.LocationSample, error) {
	query := `SELECT id, user_id, latitude, longitude, day_of_week, hour_of_day, label, created_at
		FROM location_samples
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	var s models.LocationSample
	var label sql.NullString
	err := r.db.QueryRow(query, userID).Scan(&s.ID, &s.UserID, &s.Latitude, &s.Longitude,
		&s.DayOfWeek, &s.HourOfDay, &label, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest sample: %w", err)
	}
	s.Label = label.String
	return &s, nil
}

// Delete removes a sample owned by the user. Returns false when no row
// matched (wrong owner or unknown id).
func (r *SampleRepository) Delete(userID, id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM location_samples WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete sample: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}
