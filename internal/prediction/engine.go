package prediction

import (
	"fmt"
	"math"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// MinSamples is the minimum total history required before any tier is
// attempted. Three samples gives early utility once labels are present.
const MinSamples = 3

// Per-tier confidence caps. The model never claims full certainty.
const (
	transitionConfidenceCap  = 0.95
	timeOfDayConfidenceCap   = 0.85
	globalConfidenceCap      = 0.6
	hourPatternConfidenceCap = 0.95
	mostVisitedConfidenceCap = 0.7
)

// Input carries the "now" a prediction is made for
type Input struct {
	Hour         int    // 0-23
	Day          int    // 0-6, 0 = Sunday
	CurrentLabel string // optional: where the user says they are right now
}

// Alternative is one other candidate next place from the transition model
type Alternative struct {
	Label  string
	Count  int
	Coords *models.Coordinates
}

// Result is a computed next-location estimate
type Result struct {
	Latitude     float64
	Longitude    float64
	Confidence   float64
	Label        string
	BasedOn      int    // corroborating sample count for the chosen estimate
	Tier         string // which strategy produced the result
	Alternatives []Alternative
}

// Predict selects the best-supported next-location estimate for the given
// history. Samples must be in ascending chronological order. When fewer
// than two samples carry labels the coordinate-only path over the full
// history is used instead of the label tiers.
func Predict(samples []models.LocationSample, in Input) (*Result, error) {
	if len(samples) < MinSamples {
		return nil, &InsufficientDataError{DataPoints: len(samples), Minimum: MinSamples}
	}

	var labeled []models.LocationSample
	for _, s := range samples {
		if s.HasLabel() {
			labeled = append(labeled, s)
		}
	}

	if len(labeled) < 2 {
		return predictFromCoordinates(samples, in), nil
	}
	return predictFromLabels(labeled, in), nil
}

// labelContext is the shared evidence every label tier works from
type labelContext struct {
	in       Input
	labeled  []models.LocationSample
	model    *TransitionModel
	clusters map[string]PlaceCluster // keyed by normalized label
}

// The fallback cascade: each tier either produces a result from the shared
// context or passes. The global-frequency tier always produces one, so the
// cascade cannot come up empty.
var labelTiers = []func(*labelContext) *Result{
	tierTransition,
	tierTimeOfDay,
	tierGlobalFrequency,
}

func predictFromLabels(labeled []models.LocationSample, in Input) *Result {
	ctx := &labelContext{
		in:       in,
		labeled:  labeled,
		model:    BuildTransitionModel(labeled),
		clusters: ClusterByLabel(labeled),
	}

	for _, tier := range labelTiers {
		if r := tier(ctx); r != nil {
			return r
		}
	}
	return nil // unreachable: the global tier always answers
}

// tierTransition predicts the most frequent movement out of the user's
// reported current place.
func tierTransition(ctx *labelContext) *Result {
	if ctx.in.CurrentLabel == "" {
		return nil
	}
	from := models.NormalizeLabel(ctx.in.CurrentLabel)
	if !ctx.model.Has(from) {
		return nil
	}

	out := ctx.model.Outgoing(from)
	best := out[0]
	conf := math.Min(transitionConfidenceCap, float64(best.Count)/float64(ctx.model.Total(from)))

	alts := make([]Alternative, 0, len(out))
	for _, t := range out {
		alt := Alternative{Label: t.Label, Count: t.Count}
		if c, ok := ctx.clusters[t.Label]; ok {
			alt.Label = c.Label
			alt.Coords = &models.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
		}
		alts = append(alts, alt)
	}

	r := resultForLabel(ctx, best.Label, conf, best.Count, "transition")
	r.Alternatives = alts
	return r
}

// tierTimeOfDay predicts from labeled samples seen on the same weekday
// within an hour of the upcoming hour.
func tierTimeOfDay(ctx *labelContext) *Result {
	target := (ctx.in.Hour + 1) % 24

	counts := make(map[string]int)
	var order []string
	matching := 0
	for _, s := range ctx.labeled {
		if s.DayOfWeek != ctx.in.Day || hourDistance(s.HourOfDay, target) > 1 {
			continue
		}
		key := models.NormalizeLabel(s.Label)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
		matching++
	}
	if matching == 0 {
		return nil
	}

	win := pluralityLabel(counts, order)
	conf := math.Min(timeOfDayConfidenceCap, float64(counts[win])/float64(matching))
	return resultForLabel(ctx, win, conf, counts[win], "time_of_day")
}

// tierGlobalFrequency predicts the most visited labeled place overall
func tierGlobalFrequency(ctx *labelContext) *Result {
	counts := make(map[string]int)
	var order []string
	for _, s := range ctx.labeled {
		key := models.NormalizeLabel(s.Label)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	win := pluralityLabel(counts, order)
	conf := math.Min(globalConfidenceCap, float64(counts[win])/float64(len(ctx.labeled)))
	return resultForLabel(ctx, win, conf, counts[win], "global_frequency")
}

// resultForLabel resolves the winning label's coordinate as the mean over
// all samples carrying that label, recomputed fresh for this request.
func resultForLabel(ctx *labelContext, key string, confidence float64, basedOn int, tier string) *Result {
	c := ctx.clusters[key]
	return &Result{
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		Confidence: confidence,
		Label:      c.Label,
		BasedOn:    basedOn,
		Tier:       tier,
	}
}

// predictFromCoordinates is the coordinate-only path used when the history
// carries no usable labels: group by (weekday, hour), probe the next three
// hours, and fall back to the most visited coordinate cell.
func predictFromCoordinates(samples []models.LocationSample, in Input) *Result {
	type slot struct{ day, hour int }
	groups := make(map[slot][]models.LocationSample)
	for _, s := range samples {
		k := slot{s.DayOfWeek, s.HourOfDay}
		groups[k] = append(groups[k], s)
	}

	total := len(samples)

	var best []models.LocationSample
	bestHour := -1
	day, hour := in.Day, in.Hour
	for i := 0; i < 3; i++ {
		hour++
		if hour > 23 {
			hour -= 24
			day = (day + 1) % 7
		}
		if g := groups[slot{day, hour}]; len(g) > len(best) {
			best = g
			bestHour = hour
		}
	}

	if len(best) > 0 {
		lat, lng := centroid(best)
		conf := math.Min(hourPatternConfidenceCap, float64(len(best))/float64(total)*5+0.3)
		return &Result{
			Latitude:   lat,
			Longitude:  lng,
			Confidence: conf,
			Label:      fmt.Sprintf("Hour %d:00", bestHour),
			BasedOn:    len(best),
			Tier:       "hour_pattern",
		}
	}

	// Nothing logged in the next three hours: take the most visited
	// coordinate cell, rounding to 4 decimal places (~11 m grid).
	cells := make(map[models.Coordinates][]models.LocationSample)
	var order []models.Coordinates
	for _, s := range samples {
		key := models.Coordinates{Latitude: roundCoord(s.Latitude), Longitude: roundCoord(s.Longitude)}
		if len(cells[key]) == 0 {
			order = append(order, key)
		}
		cells[key] = append(cells[key], s)
	}

	var bestCell []models.LocationSample
	for _, k := range order {
		if len(cells[k]) > len(bestCell) {
			bestCell = cells[k]
		}
	}

	lat, lng := centroid(bestCell)
	conf := math.Min(mostVisitedConfidenceCap, float64(len(bestCell))/float64(total)*2)
	return &Result{
		Latitude:   lat,
		Longitude:  lng,
		Confidence: conf,
		Label:      "Most visited location",
		BasedOn:    len(bestCell),
		Tier:       "most_visited",
	}
}

// pluralityLabel picks the label with the highest count; ties go to the
// first-seen label so the choice is deterministic.
func pluralityLabel(counts map[string]int, order []string) string {
	best := ""
	for _, l := range order {
		if best == "" || counts[l] > counts[best] {
			best = l
		}
	}
	return best
}

// hourDistance is the circular distance between two hours of day, so 23:00
// counts as adjacent to 0:00.
func hourDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if 24-d < d {
		d = 24 - d
	}
	return d
}

func roundCoord(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func centroid(samples []models.LocationSample) (float64, float64) {
	var latSum, lngSum float64
	for _, s := range samples {
		latSum += s.Latitude
		lngSum += s.Longitude
	}
	n := float64(len(samples))
	return latSum / n, lngSum / n
}
