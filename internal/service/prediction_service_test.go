package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
)

const testSchema = `
CREATE TABLE location_samples (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    latitude    REAL NOT NULL,
    longitude   REAL NOT NULL,
    day_of_week INTEGER NOT NULL,
    hour_of_day INTEGER NOT NULL,
    label       TEXT,
    created_at  TIMESTAMP NOT NULL
);
CREATE TABLE predictions (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    latitude      REAL NOT NULL,
    longitude     REAL NOT NULL,
    confidence    REAL NOT NULL,
    label         TEXT NOT NULL,
    based_on      INTEGER NOT NULL,
    predicted_for TIMESTAMP NOT NULL,
    created_at    TIMESTAMP NOT NULL
);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each sqlite :memory: connection is its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func seedCommute(t *testing.T, repo *repository.SampleRepository, userID string) {
	t.Helper()
	base := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC) // a Monday
	fixtures := []struct {
		label string
		day   int
		hour  int
		lat   float64
		lng   float64
	}{
		{"home", 1, 8, 40.0, -74.0},
		{"office", 1, 9, 41.0, -75.0},
		{"home", 2, 8, 40.0, -74.0},
		{"office", 2, 9, 41.0, -75.0},
	}
	for i, f := range fixtures {
		err := repo.Insert(&models.LocationSample{
			ID:        uuid.NewString(),
			UserID:    userID,
			Latitude:  f.lat,
			Longitude: f.lng,
			DayOfWeek: f.day,
			HourOfDay: f.hour,
			Label:     f.label,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
}

func intPtr(v int) *int { return &v }

func TestPredictNextPersistsOnePredictionPerCall(t *testing.T) {
	db := newTestDB(t)
	sampleRepo := repository.NewSampleRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	svc := NewPredictionService(sampleRepo, predictionRepo, 1000)

	seedCommute(t, sampleRepo, "user-1")

	req := models.PredictRequest{Hour: intPtr(8), Day: intPtr(1), CurrentLabel: "home"}

	// N calls append N records, none overwritten
	for i := 1; i <= 3; i++ {
		resp, err := svc.PredictNext("user-1", req)
		require.NoError(t, err)
		assert.Equal(t, "office", resp.Prediction.Label)
		assert.InDelta(t, 0.95, resp.Prediction.Confidence, 1e-9)
		assert.Equal(t, 2, resp.Prediction.BasedOn)
		assert.Equal(t, 4, resp.TotalDataPoints)
		assert.Equal(t, 4, resp.LabeledDataPoints)
		assert.Equal(t, []string{"home", "office"}, resp.AvailableLabels)

		records, err := svc.ListPredictions("user-1", 100)
		require.NoError(t, err)
		assert.Len(t, records, i)
	}
}

func TestPredictNextInsufficientDataWritesNothing(t *testing.T) {
	db := newTestDB(t)
	sampleRepo := repository.NewSampleRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	svc := NewPredictionService(sampleRepo, predictionRepo, 1000)

	err := sampleRepo.Insert(&models.LocationSample{
		ID:        uuid.NewString(),
		UserID:    "user-2",
		Latitude:  40.0,
		Longitude: -74.0,
		DayOfWeek: 1,
		HourOfDay: 8,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.PredictNext("user-2", models.PredictRequest{Hour: intPtr(8), Day: intPtr(1)})
	require.Error(t, err)

	var insufficient *prediction.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.DataPoints)

	records, err := svc.ListPredictions("user-2", 100)
	require.NoError(t, err)
	assert.Empty(t, records, "a failed prediction performs no write")
}

func TestDeletePredictionIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	sampleRepo := repository.NewSampleRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	svc := NewPredictionService(sampleRepo, predictionRepo, 1000)

	seedCommute(t, sampleRepo, "user-1")
	_, err := svc.PredictNext("user-1", models.PredictRequest{Hour: intPtr(8), Day: intPtr(1)})
	require.NoError(t, err)

	records, err := svc.ListPredictions("user-1", 100)
	require.NoError(t, err)
	require.Len(t, records, 1)

	deleted, err := svc.DeletePrediction("someone-else", records[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeletePrediction("user-1", records[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
