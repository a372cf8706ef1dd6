package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

func sample(label string, day, hour int, lat, lng float64) models.LocationSample {
	return models.LocationSample{
		Latitude:  lat,
		Longitude: lng,
		DayOfWeek: day,
		HourOfDay: hour,
		Label:     label,
		CreatedAt: time.Now(),
	}
}

func TestClusterByLabelEmptyInput(t *testing.T) {
	assert.Empty(t, ClusterByLabel(nil))
	assert.Empty(t, ClusterByLabel([]models.LocationSample{
		sample("", 1, 8, 40.0, -74.0),
	}))
}

func TestClusterByLabelNormalizesAndAverages(t *testing.T) {
	samples := []models.LocationSample{
		sample("Home", 1, 8, 40.0, -74.0),
		sample("home", 2, 8, 40.2, -74.2),
		sample(" home ", 3, 8, 40.1, -74.1),
		sample("Office", 1, 9, 41.0, -75.0),
	}

	clusters := ClusterByLabel(samples)
	require.Len(t, clusters, 2)

	home, ok := clusters["home"]
	require.True(t, ok, "differently cased labels must share one cluster")
	assert.Equal(t, 3, home.SampleCount)
	assert.Equal(t, "Home", home.Label, "display label keeps first-seen casing")
	assert.InDelta(t, 40.1, home.Latitude, 1e-9)
	assert.InDelta(t, -74.1, home.Longitude, 1e-9)

	office := clusters["office"]
	assert.Equal(t, 1, office.SampleCount)
}

func TestLabelSetFirstSeenOrder(t *testing.T) {
	samples := []models.LocationSample{
		sample("Office", 1, 9, 41.0, -75.0),
		sample("", 1, 10, 41.0, -75.0),
		sample("home", 1, 18, 40.0, -74.0),
		sample("OFFICE", 2, 9, 41.0, -75.0),
	}

	assert.Equal(t, []string{"Office", "home"}, LabelSet(samples))
}

func TestClusterByProximityGroupsNearbyPoints(t *testing.T) {
	samples := []models.LocationSample{
		sample("", 1, 8, 40.0, -74.0),
		sample("", 1, 9, 40.0004, -74.0004),
		sample("", 1, 10, 40.0008, -74.0008),
		sample("", 2, 8, 40.01, -74.01),
		sample("", 2, 9, 40.0104, -74.0104),
	}

	clusters := ClusterByProximity(samples, DefaultProximityTolerance)
	require.Len(t, clusters, 2)

	// Sorted by count descending
	assert.Equal(t, 3, clusters[0].SampleCount)
	assert.Equal(t, 2, clusters[1].SampleCount)

	// Centroid is the mean of all members, not the seed point
	assert.InDelta(t, 40.0004, clusters[0].Latitude, 1e-9)
	assert.InDelta(t, -74.0004, clusters[0].Longitude, 1e-9)
}

func TestClusterByProximityFarPointsStaySeparate(t *testing.T) {
	samples := []models.LocationSample{
		sample("", 1, 8, 40.0, -74.0),
		sample("", 1, 9, 40.5, -74.5),
		sample("", 1, 10, 41.0, -75.0),
	}

	clusters := ClusterByProximity(samples, DefaultProximityTolerance)
	assert.Len(t, clusters, 3)
	for _, c := range clusters {
		assert.Equal(t, 1, c.SampleCount)
	}
}

func TestClusterByProximityTieKeepsDiscoveryOrder(t *testing.T) {
	samples := []models.LocationSample{
		sample("", 1, 8, 40.0, -74.0),
		sample("", 1, 9, 50.0, -80.0),
	}

	clusters := ClusterByProximity(samples, DefaultProximityTolerance)
	require.Len(t, clusters, 2)
	assert.Equal(t, "Area 1", clusters[0].Label)
	assert.Equal(t, "Area 2", clusters[1].Label)
}
