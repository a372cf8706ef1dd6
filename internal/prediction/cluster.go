package prediction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// DefaultProximityTolerance is the coordinate box used when clustering
// unlabeled samples: ~0.001 degrees is roughly 100 m in both axes. This is
// a box comparison against the centroid, not geodesic clustering.
const DefaultProximityTolerance = 0.001

// PlaceCluster is a derived aggregate over a group of samples. Clusters are
// recomputed per request from the sample list, never persisted.
type PlaceCluster struct {
	Label       string  // display label, or a synthetic area name for proximity clusters
	Latitude    float64 // centroid
	Longitude   float64
	SampleCount int
}

// ClusterByLabel groups labeled samples by normalized label and returns the
// mean coordinate and sample count per label, keyed by the normalized form.
// Unlabeled samples are ignored; empty input yields an empty map.
func ClusterByLabel(samples []models.LocationSample) map[string]PlaceCluster {
	type acc struct {
		display string
		latSum  float64
		lngSum  float64
		count   int
	}

	accs := make(map[string]*acc)
	for _, s := range samples {
		if !s.HasLabel() {
			continue
		}
		key := models.NormalizeLabel(s.Label)
		a, ok := accs[key]
		if !ok {
			// First occurrence fixes the display casing
			a = &acc{display: strings.TrimSpace(s.Label)}
			accs[key] = a
		}
		a.latSum += s.Latitude
		a.lngSum += s.Longitude
		a.count++
	}

	clusters := make(map[string]PlaceCluster, len(accs))
	for key, a := range accs {
		clusters[key] = PlaceCluster{
			Label:       a.display,
			Latitude:    a.latSum / float64(a.count),
			Longitude:   a.lngSum / float64(a.count),
			SampleCount: a.count,
		}
	}
	return clusters
}

// LabelSet returns the distinct display labels in first-seen order.
func LabelSet(samples []models.LocationSample) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range samples {
		if !s.HasLabel() {
			continue
		}
		key := models.NormalizeLabel(s.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		labels = append(labels, strings.TrimSpace(s.Label))
	}
	return labels
}

// ClusterByProximity groups samples (labels ignored) into coordinate
// clusters. A sample joins the first cluster whose centroid is within the
// tolerance on both axes, otherwise it seeds a new cluster.
//
// The centroid is a true incremental mean: each assignment folds the point
// into the cluster average before later samples are compared, so membership
// still depends on arrival order but the reported coordinate is the mean of
// all members.
//
// The result is sorted by sample count descending; ties keep discovery order.
func ClusterByProximity(samples []models.LocationSample, toleranceDeg float64) []PlaceCluster {
	if toleranceDeg <= 0 {
		toleranceDeg = DefaultProximityTolerance
	}

	type acc struct {
		latSum float64
		lngSum float64
		count  int
	}

	var accs []*acc
	for _, s := range samples {
		assigned := false
		for _, a := range accs {
			lat := a.latSum / float64(a.count)
			lng := a.lngSum / float64(a.count)
			if abs(s.Latitude-lat) <= toleranceDeg && abs(s.Longitude-lng) <= toleranceDeg {
				a.latSum += s.Latitude
				a.lngSum += s.Longitude
				a.count++
				assigned = true
				break
			}
		}
		if !assigned {
			accs = append(accs, &acc{latSum: s.Latitude, lngSum: s.Longitude, count: 1})
		}
	}

	clusters := make([]PlaceCluster, 0, len(accs))
	for i, a := range accs {
		clusters = append(clusters, PlaceCluster{
			Label:       fmt.Sprintf("Area %d", i+1),
			Latitude:    a.latSum / float64(a.count),
			Longitude:   a.lngSum / float64(a.count),
			SampleCount: a.count,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].SampleCount > clusters[j].SampleCount
	})
	return clusters
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
