package repository

import (
	"database/sql"
	"fmt"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// PredictionRepository handles database operations for predictions
type PredictionRepository struct {
	db *sql.DB
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *sql.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Insert appends a new prediction record. Predictions are append-only: the
// full history is kept for later accuracy auditing.
func (r *PredictionRepository) Insert(p *models.Prediction) error {
	query := `INSERT INTO predictions
		(id, user_id, latitude, longitude, confidence, label, based_on, predicted_for, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, p.ID, p.UserID, p.Latitude, p.Longitude,
		p.Confidence, p.Label, p.BasedOn, p.PredictedFor, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's predictions, most recent first
func (r *PredictionRepository) ListByUser(userID string, limit int) ([]models.Prediction, error) {
	query := `SELECT id, user_id, latitude, longitude, confidence, label, based_on, predicted_for, created_at
		FROM predictions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(&p.ID, &p.UserID, &p.Latitude, &p.Longitude,
			&p.Confidence, &p.Label, &p.BasedOn, &p.PredictedFor, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

// Delete removes a prediction owned by the user
func (r *PredictionRepository) Delete(userID, id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM predictions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete prediction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}
