package prediction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

func TestPredictRejectsTinyHistory(t *testing.T) {
	samples := []models.LocationSample{
		sample("home", 1, 8, 40.0, -74.0),
		sample("office", 1, 9, 41.0, -75.0),
	}

	_, err := Predict(samples, Input{Hour: 8, Day: 1})
	require.Error(t, err)

	var insufficient *InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 2, insufficient.DataPoints)
	assert.Equal(t, MinSamples, insufficient.Minimum)
}

func TestPredictTransitionTier(t *testing.T) {
	// Two observed home->office mornings: asking from "home" must predict
	// "office" with the transition cap applied to a certain transition.
	samples := []models.LocationSample{
		sample("home", 1, 8, 40.0, -74.0),
		sample("office", 1, 9, 41.0, -75.0),
		sample("home", 2, 8, 40.0, -74.0),
		sample("office", 2, 9, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 8, Day: 1, CurrentLabel: "home"})
	require.NoError(t, err)

	assert.Equal(t, "transition", r.Tier)
	assert.Equal(t, "office", r.Label)
	assert.InDelta(t, 0.95, r.Confidence, 1e-9, "certain transition is clamped to 0.95")
	assert.Equal(t, 2, r.BasedOn)
	assert.InDelta(t, 41.0, r.Latitude, 1e-9)
	assert.InDelta(t, -75.0, r.Longitude, 1e-9)

	require.Len(t, r.Alternatives, 1)
	assert.Equal(t, "office", r.Alternatives[0].Label)
	assert.Equal(t, 2, r.Alternatives[0].Count)
	require.NotNil(t, r.Alternatives[0].Coords)
	assert.InDelta(t, 41.0, r.Alternatives[0].Coords.Latitude, 1e-9)
}

func TestPredictTransitionTierNormalizesCurrentLabel(t *testing.T) {
	samples := []models.LocationSample{
		sample("Home", 1, 8, 40.0, -74.0),
		sample("office", 1, 9, 41.0, -75.0),
		sample("home", 2, 8, 40.0, -74.0),
		sample("office", 2, 9, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 8, Day: 1, CurrentLabel: " HOME "})
	require.NoError(t, err)
	assert.Equal(t, "transition", r.Tier)
	assert.Equal(t, "office", r.Label)
}

func TestPredictTransitionTierSplitConfidence(t *testing.T) {
	samples := []models.LocationSample{
		sample("home", 1, 8, 40.0, -74.0),
		sample("office", 1, 9, 41.0, -75.0),
		sample("home", 2, 8, 40.0, -74.0),
		sample("office", 2, 9, 41.0, -75.0),
		sample("home", 3, 8, 40.0, -74.0),
		sample("gym", 3, 18, 42.0, -76.0),
	}

	r, err := Predict(samples, Input{Hour: 8, Day: 1, CurrentLabel: "home"})
	require.NoError(t, err)
	assert.Equal(t, "office", r.Label)
	assert.InDelta(t, 2.0/3.0, r.Confidence, 1e-9)
	assert.Len(t, r.Alternatives, 2)
}

func TestPredictTimeOfDayTier(t *testing.T) {
	// No current label, so the transition tier passes. Monday around 10:00
	// is dominated by the office.
	samples := []models.LocationSample{
		sample("office", 1, 9, 41.0, -75.0),
		sample("office", 1, 10, 41.0, -75.0),
		sample("cafe", 1, 10, 43.0, -77.0),
		sample("home", 5, 20, 40.0, -74.0),
	}

	r, err := Predict(samples, Input{Hour: 9, Day: 1})
	require.NoError(t, err)

	assert.Equal(t, "time_of_day", r.Tier)
	assert.Equal(t, "office", r.Label)
	assert.Equal(t, 2, r.BasedOn)
	assert.InDelta(t, 2.0/3.0, r.Confidence, 1e-9)
}

func TestPredictTimeOfDayTierConfidenceCap(t *testing.T) {
	samples := []models.LocationSample{
		sample("office", 1, 10, 41.0, -75.0),
		sample("office", 1, 10, 41.0, -75.0),
		sample("office", 1, 11, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 9, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "time_of_day", r.Tier)
	assert.InDelta(t, 0.85, r.Confidence, 1e-9, "unanimous slot is clamped to the tier cap")
}

func TestPredictTimeOfDayWrapsMidnight(t *testing.T) {
	// 23:00 + 1 wraps to 0:00; a 23:00 sample is within the one-hour window
	samples := []models.LocationSample{
		sample("home", 2, 23, 40.0, -74.0),
		sample("home", 2, 0, 40.0, -74.0),
		sample("office", 4, 9, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 23, Day: 2})
	require.NoError(t, err)
	assert.Equal(t, "time_of_day", r.Tier)
	assert.Equal(t, "home", r.Label)
}

func TestPredictGlobalFrequencyTier(t *testing.T) {
	// Nothing logged for Wednesday around 15:00, so the cascade falls
	// through to overall label frequency.
	samples := []models.LocationSample{
		sample("home", 1, 8, 40.0, -74.0),
		sample("home", 1, 20, 40.0, -74.0),
		sample("office", 2, 9, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 14, Day: 3})
	require.NoError(t, err)

	assert.Equal(t, "global_frequency", r.Tier)
	assert.Equal(t, "home", r.Label)
	assert.Equal(t, 2, r.BasedOn)
	assert.InDelta(t, 0.6, r.Confidence, 1e-9, "2/3 majority is clamped to the tier cap")
	assert.Empty(t, r.Alternatives)
}

func TestPredictConfidenceNeverExceedsOverallCap(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		build func() []models.LocationSample
	}{
		{
			name: "transition",
			in:   Input{Hour: 8, Day: 1, CurrentLabel: "home"},
			build: func() []models.LocationSample {
				return []models.LocationSample{
					sample("home", 1, 8, 40.0, -74.0),
					sample("office", 1, 9, 41.0, -75.0),
					sample("home", 2, 8, 40.0, -74.0),
					sample("office", 2, 9, 41.0, -75.0),
				}
			},
		},
		{
			name: "coordinate only",
			in:   Input{Hour: 8, Day: 1},
			build: func() []models.LocationSample {
				return []models.LocationSample{
					sample("", 1, 9, 40.0, -74.0),
					sample("", 1, 9, 40.0, -74.0),
					sample("", 1, 9, 40.0, -74.0),
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Predict(tc.build(), tc.in)
			require.NoError(t, err)
			assert.LessOrEqual(t, r.Confidence, 0.95)
			assert.GreaterOrEqual(t, r.Confidence, 0.0)
		})
	}
}

func TestPredictCoordinateOnlyHourPattern(t *testing.T) {
	// Unlabeled history with a strong 9:00 Monday pattern
	samples := []models.LocationSample{
		sample("", 1, 9, 40.0, -74.0),
		sample("", 1, 9, 40.2, -74.2),
		sample("", 3, 15, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 8, Day: 1})
	require.NoError(t, err)

	assert.Equal(t, "hour_pattern", r.Tier)
	assert.Equal(t, "Hour 9:00", r.Label)
	assert.Equal(t, 2, r.BasedOn)
	assert.InDelta(t, 40.1, r.Latitude, 1e-9)
	// 2/3 * 5 + 0.3 > 0.95, clamped
	assert.InDelta(t, 0.95, r.Confidence, 1e-9)
}

func TestPredictCoordinateOnlyWrapsDayForward(t *testing.T) {
	// 23:00 Saturday: the next three hours spill into Sunday (day 0)
	samples := []models.LocationSample{
		sample("", 0, 1, 40.0, -74.0),
		sample("", 3, 12, 41.0, -75.0),
		sample("", 4, 12, 41.0, -75.0),
	}

	r, err := Predict(samples, Input{Hour: 23, Day: 6})
	require.NoError(t, err)
	assert.Equal(t, "hour_pattern", r.Tier)
	assert.Equal(t, "Hour 1:00", r.Label)
}

func TestPredictCoordinateOnlyMostVisitedFallback(t *testing.T) {
	// No samples in the next three hours: fall back to the most visited
	// coordinate cell.
	var samples []models.LocationSample
	for i := 0; i < 10; i++ {
		samples = append(samples, sample("", 1, 9, 40.0, -74.0))
	}
	samples = append(samples,
		sample("", 1, 9, 40.01, -74.01),
		sample("", 1, 9, 40.01, -74.01),
	)

	r, err := Predict(samples, Input{Hour: 14, Day: 3})
	require.NoError(t, err)

	assert.Equal(t, "most_visited", r.Tier)
	assert.Equal(t, "Most visited location", r.Label)
	assert.Equal(t, 10, r.BasedOn)
	assert.InDelta(t, 40.0, r.Latitude, 1e-9)
	assert.InDelta(t, -74.0, r.Longitude, 1e-9)
	// 10/12 * 2 > 0.7, clamped to the fallback cap
	assert.InDelta(t, 0.7, r.Confidence, 1e-9)
}

func TestPredictSingleLabelUsesCoordinatePath(t *testing.T) {
	// One labeled sample cannot form a transition; the coordinate-only
	// path over the full history takes over.
	samples := []models.LocationSample{
		sample("home", 1, 9, 40.0, -74.0),
		sample("", 1, 9, 40.0, -74.0),
		sample("", 1, 9, 40.0, -74.0),
	}

	r, err := Predict(samples, Input{Hour: 8, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "hour_pattern", r.Tier)
}

func TestHourDistance(t *testing.T) {
	assert.Equal(t, 0, hourDistance(9, 9))
	assert.Equal(t, 1, hourDistance(9, 10))
	assert.Equal(t, 1, hourDistance(23, 0))
	assert.Equal(t, 2, hourDistance(1, 23))
	assert.Equal(t, 12, hourDistance(0, 12))
}
